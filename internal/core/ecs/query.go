package ecs

// Membership is the untyped view of a component store used by intersection
// queries: size, lookup, and id iteration.
type Membership interface {
	Len() int
	Has(id EntityID) bool
	EachID(fn func(EntityID))
}

// Query returns the ids present in every given store. The smallest store
// drives the scan and the rest filter, so a query touching one rare kind
// never walks the full entity population. Result order is unspecified.
func Query(pools ...Membership) []EntityID {
	if len(pools) == 0 {
		return nil
	}
	driving := pools[0]
	for _, p := range pools[1:] {
		if p.Len() < driving.Len() {
			driving = p
		}
	}
	out := make([]EntityID, 0, driving.Len())
	driving.EachID(func(id EntityID) {
		for _, p := range pools {
			if p == driving {
				continue
			}
			if !p.Has(id) {
				return
			}
		}
		out = append(out, id)
	})
	return out
}

// Each2 visits every entity carrying both components. The smaller store is
// walked and the larger one probed.
func Each2[A, B any](sa *Store[A], sb *Store[B], fn func(EntityID, *A, *B)) {
	if sb.Len() < sa.Len() {
		for id, b := range sb.data {
			if a, ok := sa.data[id]; ok {
				fn(id, a, b)
			}
		}
		return
	}
	for id, a := range sa.data {
		if b, ok := sb.data[id]; ok {
			fn(id, a, b)
		}
	}
}

// Each3 visits every entity carrying all three components, walking whichever
// store is smallest.
func Each3[A, B, C any](sa *Store[A], sb *Store[B], sc *Store[C], fn func(EntityID, *A, *B, *C)) {
	switch {
	case sb.Len() <= sa.Len() && sb.Len() <= sc.Len():
		for id, b := range sb.data {
			a, ok := sa.data[id]
			if !ok {
				continue
			}
			if c, ok := sc.data[id]; ok {
				fn(id, a, b, c)
			}
		}
	case sc.Len() <= sa.Len():
		for id, c := range sc.data {
			a, ok := sa.data[id]
			if !ok {
				continue
			}
			if b, ok := sb.data[id]; ok {
				fn(id, a, b, c)
			}
		}
	default:
		for id, a := range sa.data {
			b, ok := sb.data[id]
			if !ok {
				continue
			}
			if c, ok := sc.data[id]; ok {
				fn(id, a, b, c)
			}
		}
	}
}
