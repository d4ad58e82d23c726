package hashring

import "sort"

// search returns the lowest index whose hash is >= hash, or len(clock) when
// there is none.
func search(clock []point, hash int32) int {
	return sort.Search(len(clock), func(i int) bool {
		return clock[i].hash >= hash
	})
}

// index returns the clock position owning key. The clock must not be empty.
func (r *Ring[M]) index(key []byte) int {
	idx := search(r.clock, r.hasher.Hash32(key))
	if idx >= len(r.clock) {
		idx = 0
	}
	return idx
}

// LocateKey finds a home for given key. It returns false if the ring has no
// members.
func (r *Ring[M]) LocateKey(key []byte) (M, bool) {
	if len(r.clock) == 0 {
		var zero M
		return zero, false
	}
	member, ok := r.members[r.clock[r.index(key)].key]
	return member, ok
}

// LocateString is LocateKey for a string key.
func (r *Ring[M]) LocateString(key string) (M, bool) {
	return r.LocateKey([]byte(key))
}

// GetClosestN returns up to count distinct members for key, starting with
// its owner and walking the clock forward. If count is at least the number
// of members, every member is returned in insertion order.
// This may be useful to find members for replication.
func (r *Ring[M]) GetClosestN(key []byte, count int) []M {
	if count >= len(r.members) {
		return r.GetMembers()
	}
	if count <= 0 {
		return []M{}
	}

	res := make([]M, 0, count)
	seen := make(map[string]struct{}, count)
	start := r.index(key)
	for i := 0; len(res) < count; i++ {
		if i >= len(r.clock) {
			// Every member owns at least one point, so one lap of the clock
			// always sees all of them.
			panic("hashring: clock holds fewer members than the registry")
		}
		p := r.clock[(start+i)%len(r.clock)]
		if _, ok := seen[p.key]; ok {
			continue
		}
		seen[p.key] = struct{}{}
		res = append(res, r.members[p.key])
	}
	return res
}

// GetClosestNString is GetClosestN for a string key.
func (r *Ring[M]) GetClosestNString(key string, count int) []M {
	return r.GetClosestN([]byte(key), count)
}

// LoadDistribution returns the share of the 32-bit hash space owned by each
// member. The shares add up to 1 unless the ring is empty.
func (r *Ring[M]) LoadDistribution() map[string]float64 {
	res := make(map[string]float64, len(r.members))
	n := len(r.clock)
	if n == 0 {
		return res
	}

	const space = float64(1 << 32)
	// The first point also owns the arc that wraps past the last point.
	first, last := int64(r.clock[0].hash), int64(r.clock[n-1].hash)
	res[r.clock[0].key] += float64(1<<32-(last-first)) / space
	for i := 1; i < n; i++ {
		arc := int64(r.clock[i].hash) - int64(r.clock[i-1].hash)
		res[r.clock[i].key] += float64(arc) / space
	}
	return res
}
