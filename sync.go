package hashring

import "sync"

// SyncRing wraps a Ring so that it can be shared between goroutines. Lookups
// run concurrently with each other; mutations are exclusive.
type SyncRing[M Member] struct {
	mu   sync.RWMutex
	ring *Ring[M]
}

// NewSync creates a SyncRing where every member has weight 1.
func NewSync[M Member](members []M, config Config) (*SyncRing[M], error) {
	r, err := New(members, config)
	if err != nil {
		return nil, err
	}
	return Synchronized(r), nil
}

// NewSyncWeighted creates a SyncRing from weighted entries.
func NewSyncWeighted[M Member](entries []Entry[M], config Config) (*SyncRing[M], error) {
	r, err := NewWeighted(entries, config)
	if err != nil {
		return nil, err
	}
	return Synchronized(r), nil
}

// Synchronized wraps r. The caller must not use r directly afterwards.
func Synchronized[M Member](r *Ring[M]) *SyncRing[M] {
	return &SyncRing[M]{ring: r}
}

// Add adds a member with weight 1.
func (s *SyncRing[M]) Add(member M) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ring.Add(member)
}

// AddWeighted adds or re-weights a member.
func (s *SyncRing[M]) AddWeighted(member M, weight float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.AddWeighted(member, weight)
}

// Remove removes the member with the given key.
func (s *SyncRing[M]) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ring.Remove(name)
}

// RemoveMember removes the member with the same key as member.
func (s *SyncRing[M]) RemoveMember(member M) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ring.RemoveMember(member)
}

// LocateKey finds a home for given key.
func (s *SyncRing[M]) LocateKey(key []byte) (M, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ring.LocateKey(key)
}

// LocateString finds a home for given string key.
func (s *SyncRing[M]) LocateString(key string) (M, bool) {
	return s.LocateKey([]byte(key))
}

// GetClosestN returns up to count distinct members for key.
func (s *SyncRing[M]) GetClosestN(key []byte, count int) []M {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ring.GetClosestN(key, count)
}

// GetClosestNString returns up to count distinct members for a string key.
func (s *SyncRing[M]) GetClosestNString(key string, count int) []M {
	return s.GetClosestN([]byte(key), count)
}

// GetMembers returns a thread-safe copy of members.
func (s *SyncRing[M]) GetMembers() []M {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ring.GetMembers()
}

// WeightDistribution exposes weight distribution of members.
func (s *SyncRing[M]) WeightDistribution() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ring.WeightDistribution()
}

// LoadDistribution exposes the hash space share of members.
func (s *SyncRing[M]) LoadDistribution() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ring.LoadDistribution()
}

// GetTotalWeight returns the total weight of all members.
func (s *SyncRing[M]) GetTotalWeight() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ring.GetTotalWeight()
}

// Len returns the number of members.
func (s *SyncRing[M]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ring.Len()
}
