// Package hashring provides a weighted, ketama style consistent hashing ring.
//
// Every member contributes round(weight * BaseWeight) points to a sorted
// clock. A key is owned by the member behind the first point whose hash is
// greater than or equal to the key's hash, wrapping around to the first point.
// Adding or removing a member only moves the keys that land on its points.
//
// Example Use:
//
//	r, err := hashring.NewWeighted([]hashring.Entry[hashring.StringMember]{
//		{Member: "server1"},
//		{Member: "server2", Weight: 2},
//	}, hashring.Config{})
//
// Find the owner of a key:
//
//	owner, ok := r.LocateString("my-key")
//
// Or the ordered, distinct owners for replication:
//
//	owners := r.GetClosestNString("my-key", 2)
//
// A Ring does no locking. Use SyncRing when one ring is shared between
// goroutines and mutated.
package hashring

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// point is a single replica point on the clock.
type point struct {
	hash int32
	key  string
}

// Entry pairs a member with its weight for NewWeighted. A zero Weight
// means the default weight 1.
type Entry[M Member] struct {
	Member M
	Weight float64
}

// Ring holds the members and the clock of one consistent hash circle.
type Ring[M Member] struct {
	hasher     Hasher
	baseWeight int

	// clock is sorted ascending by hash at all times.
	clock   []point
	members map[string]M
	weights map[string]float64
	// order keeps registry keys in insertion order.
	order []string
}

// New creates a Ring where every member has weight 1.
func New[M Member](members []M, config Config) (*Ring[M], error) {
	entries := make([]Entry[M], 0, len(members))
	for _, member := range members {
		entries = append(entries, Entry[M]{Member: member, Weight: 1})
	}
	return NewWeighted(entries, config)
}

// NewWeighted creates a Ring and adds the entries in order. Later entries
// for the same key replace earlier ones.
func NewWeighted[M Member](entries []Entry[M], config Config) (*Ring[M], error) {
	config, err := config.withDefaults()
	if err != nil {
		return nil, err
	}

	r := &Ring[M]{
		hasher:     config.Hasher,
		baseWeight: config.BaseWeight,
		members:    make(map[string]M),
		weights:    make(map[string]float64),
	}
	for _, e := range entries {
		weight := e.Weight
		if weight == 0 {
			weight = 1
		}
		if err := r.AddWeighted(e.Member, weight); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add adds the member with weight 1, replacing any member with the same key.
func (r *Ring[M]) Add(member M) {
	// Weight 1 yields baseWeight points, and withDefaults keeps baseWeight
	// within [1, math.MaxInt32], so AddWeighted cannot fail here.
	_ = r.AddWeighted(member, 1)
}

// AddWeighted adds a member to the ring. If a member with the same key is
// already present it is removed first, which is how weights get updated.
// A weight of 0 removes the member.
//
// AddWeighted fails with ErrInvalidArgument, leaving the ring as it was, if
// the weight is negative, NaN or infinite, or if round(weight * baseWeight)
// is outside [1, math.MaxInt32]. A positive weight that rounds to zero
// points (0.005 at base weight 50, say) is rejected because a member with
// no points could never be returned by LocateKey and would leave
// GetClosestN unable to find enough distinct members.
func (r *Ring[M]) AddWeighted(member M, weight float64) error {
	if weight == 0 {
		r.RemoveMember(member)
		return nil
	}
	replicas, err := r.replicaCount(weight)
	if err != nil {
		return err
	}

	key := keyFor(member)
	r.remove(key)
	r.members[key] = member
	r.weights[key] = weight
	r.order = append(r.order, key)

	for i := 1; i <= replicas; i++ {
		r.clock = append(r.clock, point{
			hash: r.hasher.Hash32(pointKey(key, i)),
			key:  key,
		})
	}
	// sort hashes ascendingly
	sort.Slice(r.clock, func(i, j int) bool {
		return r.clock[i].hash < r.clock[j].hash
	})
	return nil
}

func (r *Ring[M]) replicaCount(weight float64) (int, error) {
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, fmt.Errorf("%w: cannot add a member with weight %v", ErrInvalidArgument, weight)
	}
	n := math.Round(weight * float64(r.baseWeight))
	if n < 1 {
		return 0, fmt.Errorf("%w: weight %v yields no points at base weight %d", ErrInvalidArgument, weight, r.baseWeight)
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: weight %v yields too many points", ErrInvalidArgument, weight)
	}
	return int(n), nil
}

// pointKey is the salted input for the i-th point of a member, i >= 1.
func pointKey(key string, i int) []byte {
	return []byte(key + "\x00" + strconv.Itoa(i))
}

// Remove removes the member with the given key. It is a no-op if there is
// no such member.
func (r *Ring[M]) Remove(name string) {
	r.remove(name)
}

// RemoveMember removes the member with the same key as member.
func (r *Ring[M]) RemoveMember(member M) {
	r.remove(keyFor(member))
}

func (r *Ring[M]) remove(key string) bool {
	if _, ok := r.members[key]; !ok {
		return false
	}
	delete(r.members, key)
	delete(r.weights, key)

	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	// Filtering keeps the clock sorted.
	clock := r.clock[:0]
	for _, p := range r.clock {
		if p.key != key {
			clock = append(clock, p)
		}
	}
	clear(r.clock[len(clock):])
	r.clock = clock
	return true
}

// GetMembers returns a copy of the members in the order they were added.
func (r *Ring[M]) GetMembers() []M {
	members := make([]M, 0, len(r.order))
	for _, key := range r.order {
		members = append(members, r.members[key])
	}
	return members
}

// WeightDistribution exposes weight distribution of members.
func (r *Ring[M]) WeightDistribution() map[string]float64 {
	res := make(map[string]float64, len(r.weights))
	for key, weight := range r.weights {
		res[key] = weight
	}
	return res
}

// GetTotalWeight returns the total weight of all members.
func (r *Ring[M]) GetTotalWeight() float64 {
	var total float64
	for _, weight := range r.weights {
		total += weight
	}
	return total
}

// Len returns the number of members.
func (r *Ring[M]) Len() int {
	return len(r.members)
}

// Points returns the number of points on the clock.
func (r *Ring[M]) Points() int {
	return len(r.clock)
}
