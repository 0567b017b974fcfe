package resumes

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory Repo used in dev mode and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	records []ParsedResume
	byID    map[primitive.ObjectID]int
}

// NewMemoryRepo constructs an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[primitive.ObjectID]int)}
}

// Insert stores a new record and returns its generated id.
func (r *MemoryRepo) Insert(_ context.Context, rec ParsedResume) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	r.byID[rec.ID] = len(r.records)
	r.records = append(r.records, rec)
	return rec.ID, nil
}

// FindByID fetches one record by its id.
func (r *MemoryRepo) FindByID(_ context.Context, id primitive.ObjectID) (ParsedResume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return ParsedResume{}, ErrNotFound
	}
	return r.records[idx], nil
}

// FindByUser fetches all records owned by a user, in insertion order.
func (r *MemoryRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]ParsedResume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []ParsedResume{}
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Ping always succeeds for the in-memory repo.
func (r *MemoryRepo) Ping(_ context.Context) error {
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
