package memory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/activities/internal/domain"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activities.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	path := writeSeedFile(t, `
- name: Chess Club
  description: Learn strategies and compete in chess tournaments
  schedule: Fridays, 3:30 PM - 5:00 PM
  max_participants: 12
  participants:
    - michael@mergington.edu
    - daniel@mergington.edu
- name: Drama Club
  description: Act, direct, and produce plays and performances
  schedule: Mondays and Wednesdays, 3:30 PM - 5:30 PM
  max_participants: 20
  participants: []
`)

	seed, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, seed, 2)

	assert.Equal(t, "Chess Club", seed[0].Name)
	assert.Equal(t, 12, seed[0].MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, seed[0].Participants)
	assert.Equal(t, "Drama Club", seed[1].Name)
	assert.Empty(t, seed[1].Participants)
}

func TestLoadSeedFileMissing(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadSeedFileMalformed(t *testing.T) {
	path := writeSeedFile(t, "{not yaml: [")
	_, err := LoadSeedFile(path)
	require.Error(t, err)
}

func TestValidateSeedDuplicateName(t *testing.T) {
	err := ValidateSeed([]domain.Activity{
		{Name: "Chess Club", MaxParticipants: 10},
		{Name: "Chess Club", MaxParticipants: 10},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate activity name")
}

func TestValidateSeedDuplicateParticipant(t *testing.T) {
	err := ValidateSeed([]domain.Activity{{
		Name:            "Chess Club",
		MaxParticipants: 10,
		Participants:    []string{"michael@mergington.edu", "michael@mergington.edu"},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate participant")
}

func TestValidateSeedNonPositiveCapacity(t *testing.T) {
	err := ValidateSeed([]domain.Activity{{Name: "Chess Club", MaxParticipants: 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_participants")
}

func TestDefaultSeedIsValid(t *testing.T) {
	require.NoError(t, ValidateSeed(DefaultSeed()))
}
