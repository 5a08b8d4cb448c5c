package server

import (
	"sync"

	"github.com/google/uuid"
	"github.com/internodyssey/intern-match/internal/types"
)

// defaultJobCapacity applies when a submitted job omits its capacity.
const defaultJobCapacity = 10

// JobStore holds submitted postings in memory for later matching. Postings
// live only as long as the process; durable storage is deliberately out of
// scope.
type JobStore struct {
	mu        sync.RWMutex
	jobs      map[string]types.Posting
	order     []string
	currentID string
}

// NewJobStore creates an empty job store.
func NewJobStore() *JobStore {
	return &JobStore{jobs: make(map[string]types.Posting)}
}

// Create stores a posting built from the request and marks it current.
func (s *JobStore) Create(req *types.SubmitJobRequest) types.Posting {
	capacity := req.Capacity
	if capacity == 0 {
		capacity = defaultJobCapacity
	}
	quotas := req.Quotas
	if quotas == nil {
		quotas = map[string]int{}
	}

	posting := types.Posting{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Location:       req.Location,
		Capacity:       capacity,
		Quotas:         quotas,
		TargetedSocial: req.TargetedSocial,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[posting.ID] = posting
	s.order = append(s.order, posting.ID)
	s.currentID = posting.ID
	return posting
}

// List returns all stored postings in submission order.
func (s *JobStore) List() []types.Posting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Posting, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.jobs[id])
	}
	return out
}

// Get returns a stored posting by ID.
func (s *JobStore) Get(id string) (types.Posting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posting, ok := s.jobs[id]
	return posting, ok
}

// Current returns the most recently submitted posting.
func (s *JobStore) Current() (types.Posting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentID == "" {
		return types.Posting{}, false
	}
	posting, ok := s.jobs[s.currentID]
	return posting, ok
}
