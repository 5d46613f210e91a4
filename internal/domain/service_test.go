package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	activities map[string]Activity
	signupErr  error
	removeErr  error

	lastActivity string
	lastEmail    string
}

func (m *mockRepo) List(ctx context.Context) (map[string]Activity, error) {
	return m.activities, nil
}

func (m *mockRepo) Signup(ctx context.Context, activityName, email string) error {
	m.lastActivity, m.lastEmail = activityName, email
	return m.signupErr
}

func (m *mockRepo) Unregister(ctx context.Context, activityName, email string) error {
	m.lastActivity, m.lastEmail = activityName, email
	return m.removeErr
}

func TestSignupMessage(t *testing.T) {
	repo := &mockRepo{}
	service := NewService(repo)

	msg, err := service.Signup(context.Background(), "Soccer Team", "newstudent@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "newstudent@mergington.edu signed up for Soccer Team", msg)
	assert.Equal(t, "Soccer Team", repo.lastActivity)
	assert.Equal(t, "newstudent@mergington.edu", repo.lastEmail)
}

func TestSignupPropagatesError(t *testing.T) {
	repo := &mockRepo{signupErr: ErrAlreadySignedUp}
	service := NewService(repo)

	msg, err := service.Signup(context.Background(), "Soccer Team", "alex@mergington.edu")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadySignedUp)
	assert.Empty(t, msg)
}

func TestUnregisterMessage(t *testing.T) {
	repo := &mockRepo{}
	service := NewService(repo)

	msg, err := service.Unregister(context.Background(), "Art Studio", "lily@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "lily@mergington.edu unregistered from Art Studio", msg)
}

func TestUnregisterPropagatesError(t *testing.T) {
	repo := &mockRepo{removeErr: ErrNotSignedUp}
	service := NewService(repo)

	_, err := service.Unregister(context.Background(), "Art Studio", "stranger@mergington.edu")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotSignedUp)
}

func TestListActivitiesPassesThrough(t *testing.T) {
	repo := &mockRepo{activities: map[string]Activity{
		"Soccer Team": {Name: "Soccer Team", MaxParticipants: 25},
	}}
	service := NewService(repo)

	activities, err := service.ListActivities(context.Background())
	require.NoError(t, err)
	assert.Len(t, activities, 1)
	assert.Contains(t, activities, "Soccer Team")
}

func TestActivityClone(t *testing.T) {
	original := Activity{
		Name:         "Soccer Team",
		Participants: []string{"alex@mergington.edu"},
	}
	clone := original.Clone()
	clone.Participants[0] = "tampered@mergington.edu"

	assert.Equal(t, "alex@mergington.edu", original.Participants[0])
}

func TestActivityHasParticipant(t *testing.T) {
	act := Activity{Participants: []string{"alex@mergington.edu", "sarah@mergington.edu"}}

	assert.True(t, act.HasParticipant("sarah@mergington.edu"))
	assert.False(t, act.HasParticipant("stranger@mergington.edu"))
}
