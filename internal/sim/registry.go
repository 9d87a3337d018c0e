package sim

import "time"

// EntityID uniquely identifies an entity for the lifetime of a registry.
// IDs are never reused, so a stale RemoveVisual can never hit a new entity.
type EntityID uint64

// ConsumableKind distinguishes plain food from power-up pickups.
type ConsumableKind int

const (
	ConsumableFood ConsumableKind = iota
	ConsumablePowerUp
)

// Consumable is a food or power-up item sitting on the grid.
type Consumable struct {
	ID     EntityID
	Kind   ConsumableKind
	Effect EffectKind // EffectNone for plain food
	Pos    Vec

	// Expiry is the simulation time at which an uncollected power-up
	// disappears. Zero means it never expires.
	Expiry time.Duration
}

// Registry owns the lifetime of every simulation entity: the ordered body
// segments (index 0 is the head) and all consumables. Each mutation
// notifies the bridge exactly once, so no render-side resource can outlive
// its logical entity.
type Registry struct {
	bridge Bridge

	nextID     EntityID
	segments   []Vec
	segmentIDs []EntityID
	items      []Consumable
}

// NewRegistry creates an empty registry reporting to the given bridge.
func NewRegistry(bridge Bridge) *Registry {
	return &Registry{bridge: bridge}
}

func (r *Registry) allocID() EntityID {
	r.nextID++
	return r.nextID
}

// Clear removes every entity, emitting a RemoveVisual for each.
func (r *Registry) Clear() {
	for _, id := range r.segmentIDs {
		r.bridge.RemoveVisual(id)
	}
	for _, c := range r.items {
		r.bridge.RemoveVisual(c.ID)
	}
	r.segments = r.segments[:0]
	r.segmentIDs = r.segmentIDs[:0]
	r.items = r.items[:0]
}

// SeedBody replaces the body with the given segment positions, head first.
func (r *Registry) SeedBody(positions []Vec) {
	for _, id := range r.segmentIDs {
		r.bridge.RemoveVisual(id)
	}
	r.segments = r.segments[:0]
	r.segmentIDs = r.segmentIDs[:0]
	for _, p := range positions {
		id := r.allocID()
		r.segments = append(r.segments, p)
		r.segmentIDs = append(r.segmentIDs, id)
		r.bridge.SpawnVisual(id, VisualSegment, p)
	}
}

// Head returns the head position. Callers must not ask on an empty body.
func (r *Registry) Head() Vec {
	return r.segments[0]
}

// Len returns the current body length in segments.
func (r *Registry) Len() int {
	return len(r.segments)
}

// Segments returns the body positions, head first. The slice is shared;
// callers must not mutate it.
func (r *Registry) Segments() []Vec {
	return r.segments
}

// Shift advances the body by one step: every non-head segment moves into
// the position previously held by the segment ahead of it, then the head
// takes newHead. With grow set, a new tail segment is appended at the
// position the former tail vacated (net length +1).
func (r *Registry) Shift(newHead Vec, grow bool) {
	if len(r.segments) == 0 {
		return
	}
	vacated := r.segments[len(r.segments)-1]
	for i := len(r.segments) - 1; i > 0; i-- {
		r.segments[i] = r.segments[i-1]
	}
	r.segments[0] = newHead

	if grow {
		id := r.allocID()
		r.segments = append(r.segments, vacated)
		r.segmentIDs = append(r.segmentIDs, id)
		r.bridge.SpawnVisual(id, VisualSegment, vacated)
	}
}

// AddConsumable registers a new food or power-up item and returns its ID.
func (r *Registry) AddConsumable(kind ConsumableKind, effect EffectKind, pos Vec, expiry time.Duration) EntityID {
	id := r.allocID()
	r.items = append(r.items, Consumable{
		ID:     id,
		Kind:   kind,
		Effect: effect,
		Pos:    pos,
		Expiry: expiry,
	})
	visual := VisualFood
	if kind == ConsumablePowerUp {
		visual = VisualPowerUp
	}
	r.bridge.SpawnVisual(id, visual, pos)
	return id
}

// Consumables returns the live items. The slice is shared; callers must
// not mutate it.
func (r *Registry) Consumables() []Consumable {
	return r.items
}

// RemoveConsumable deletes the item with the given ID, preserving order.
func (r *Registry) RemoveConsumable(id EntityID) {
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.bridge.RemoveVisual(id)
			return
		}
	}
}

// CullExpired removes power-ups whose lifetime has passed and returns how
// many were removed.
func (r *Registry) CullExpired(now time.Duration) int {
	removed := 0
	kept := r.items[:0]
	for _, c := range r.items {
		if c.Expiry > 0 && now >= c.Expiry {
			r.bridge.RemoveVisual(c.ID)
			removed++
			continue
		}
		kept = append(kept, c)
	}
	r.items = kept
	return removed
}

// CountKind returns the number of live items of the given kind.
func (r *Registry) CountKind(kind ConsumableKind) int {
	n := 0
	for _, c := range r.items {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Occupied collects every occupied position: all body segments and every
// consumable. Used as the sampler's exclusion set.
func (r *Registry) Occupied() []Vec {
	occ := make([]Vec, 0, len(r.segments)+len(r.items))
	occ = append(occ, r.segments...)
	for _, c := range r.items {
		occ = append(occ, c.Pos)
	}
	return occ
}
