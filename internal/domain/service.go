// Package domain defines the business logic for the activity signup service.
package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrActivityNotFound is returned when an activity name is not in the directory.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the student is already on the activity's roster.
	ErrAlreadySignedUp = errors.New("student is already signed up for this activity")
	// ErrNotSignedUp indicates the student is not on the activity's roster.
	ErrNotSignedUp = errors.New("student is not signed up for this activity")
)

// ActivityRepository captures directory operations. Implementations must make
// each call atomic: signup and unregister are check-then-act sequences that
// would lose updates if interleaved.
type ActivityRepository interface {
	List(ctx context.Context) (map[string]Activity, error)
	Signup(ctx context.Context, activityName, email string) error
	Unregister(ctx context.Context, activityName, email string) error
}

// Service orchestrates signup workflows over the activity directory.
type Service struct {
	repo ActivityRepository
}

// NewService constructs a Service.
func NewService(repo ActivityRepository) *Service {
	return &Service{repo: repo}
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.List(ctx)
}

// Signup adds email to the named activity's roster and returns the
// confirmation message. Email is an opaque identifier; no format validation
// is performed. Capacity is not checked.
func (s *Service) Signup(ctx context.Context, activityName, email string) (string, error) {
	if err := s.repo.Signup(ctx, activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s signed up for %s", email, activityName), nil
}

// Unregister removes email from the named activity's roster and returns the
// confirmation message.
func (s *Service) Unregister(ctx context.Context, activityName, email string) (string, error) {
	if err := s.repo.Unregister(ctx, activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s unregistered from %s", email, activityName), nil
}
