package repository

import (
	model "auction-loader/internal/models"
	"sync"
)

// UserRegistry defines the run-wide set of emitted users
type UserRegistry interface {
	Claim(user model.UserRow, role model.Role) bool
	Users() []model.UserRow
	Len() int
}

// Candidate is a user occurrence together with the role it was seen in
type Candidate struct {
	User model.UserRow
	Role model.Role
}

// ConflictPolicy decides which occurrence is kept when a user ID is claimed again
type ConflictPolicy interface {
	Resolve(existing, incoming Candidate) Candidate
}

// FirstWins keeps the first occurrence in traversal order and drops every later one
type FirstWins struct{}

func (FirstWins) Resolve(existing, _ Candidate) Candidate {
	return existing
}

// PreferSeller replaces a user first seen as a bidder with its first later
// occurrence as a seller. The user keeps its first-seen position.
type PreferSeller struct{}

func (PreferSeller) Resolve(existing, incoming Candidate) Candidate {
	if existing.Role != model.RoleSeller && incoming.Role == model.RoleSeller {
		return incoming
	}
	return existing
}

// MemoryRegistry is a concurrency-safe in-memory implementation of UserRegistry
type MemoryRegistry struct {
	mu      sync.RWMutex
	policy  ConflictPolicy
	index   map[string]int // key: userID -> value: position in users
	entries []Candidate    // in first-registration order
}

// NewMemoryRegistry creates an empty registry resolving conflicts with policy.
// A nil policy means FirstWins.
func NewMemoryRegistry(policy ConflictPolicy) *MemoryRegistry {
	if policy == nil {
		policy = FirstWins{}
	}
	return &MemoryRegistry{
		policy: policy,
		index:  make(map[string]int),
	}
}

// Claim registers user under its ID. It reports true when the ID was not seen
// before; otherwise the conflict policy picks which occurrence is kept.
func (r *MemoryRegistry) Claim(user model.UserRow, role model.Role) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	incoming := Candidate{User: user, Role: role}
	if pos, ok := r.index[user.UserID]; ok {
		r.entries[pos] = r.policy.Resolve(r.entries[pos], incoming)
		return false
	}

	r.index[user.UserID] = len(r.entries)
	r.entries = append(r.entries, incoming)
	return true
}

// Users returns a copy of the registered users in first-registration order
func (r *MemoryRegistry) Users() []model.UserRow {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.UserRow, 0, len(r.entries))
	for _, e := range r.entries {
		users = append(users, e.User)
	}
	return users
}

// Len returns the number of distinct users
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// PolicyByName returns the conflict policy registered under name
func PolicyByName(name string) (ConflictPolicy, bool) {
	switch name {
	case "", "first-wins":
		return FirstWins{}, true
	case "prefer-seller":
		return PreferSeller{}, true
	default:
		return nil, false
	}
}
