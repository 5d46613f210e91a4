// Package memory provides the in-memory activity directory. The directory is
// the only state the service holds; a restart resets it to the seed set.
package memory

import (
	"context"
	"sync"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// Repository is a mutex-guarded in-memory implementation of
// domain.ActivityRepository. net/http serves requests concurrently, so every
// read-modify-write on the directory happens under the lock.
type Repository struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewRepository seeds a Repository from the given activities. The key set is
// fixed for the lifetime of the repository; only rosters mutate afterwards.
func NewRepository(seed []domain.Activity) *Repository {
	activities := make(map[string]domain.Activity, len(seed))
	for _, act := range seed {
		activities[act.Name] = act.Clone()
		observability.RecordRosterSize(act.Name, len(act.Participants))
	}
	return &Repository{activities: activities}
}

// List returns a deep-copied snapshot of the whole directory.
func (r *Repository) List(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, act := range r.activities {
		out[name] = act.Clone()
	}
	return out, nil
}

// Signup appends email to the activity's roster, preserving signup order.
// There is no capacity check: max participants is descriptive only.
func (r *Repository) Signup(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, exists := r.activities[activityName]
	if !exists {
		return domain.ErrActivityNotFound
	}
	if act.HasParticipant(email) {
		return domain.ErrAlreadySignedUp
	}

	act.Participants = append(act.Participants, email)
	r.activities[activityName] = act
	observability.RecordSignup(activityName, len(act.Participants))
	return nil
}

// Unregister removes the single matching email entry from the roster.
func (r *Repository) Unregister(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, exists := r.activities[activityName]
	if !exists {
		return domain.ErrActivityNotFound
	}

	idx := -1
	for i, p := range act.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotSignedUp
	}

	act.Participants = append(act.Participants[:idx], act.Participants[idx+1:]...)
	r.activities[activityName] = act
	observability.RecordUnregister(activityName, len(act.Participants))
	return nil
}
