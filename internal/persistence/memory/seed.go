package memory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"example.com/activities/internal/domain"
)

// seedEntry is the YAML shape of one activity in an overrides file.
type seedEntry struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// DefaultSeed returns the built-in activity catalog used when no overrides
// file is configured.
func DefaultSeed() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team and compete in regional matches",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"alex@mergington.edu", "sarah@mergington.edu"},
		},
		{
			Name:            "Basketball Club",
			Description:     "Practice basketball skills and play friendly matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "emily@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore painting, drawing, and mixed media art techniques",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"lily@mergington.edu", "noah@mergington.edu"},
		},
	}
}

// LoadSeedFile parses a YAML activity catalog. The file replaces the default
// seed entirely; it is startup configuration, not a runtime create operation.
func LoadSeedFile(path string) ([]domain.Activity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []seedEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	seed := make([]domain.Activity, 0, len(entries))
	for _, e := range entries {
		seed = append(seed, domain.Activity{
			Name:            e.Name,
			Description:     e.Description,
			Schedule:        e.Schedule,
			MaxParticipants: e.MaxParticipants,
			Participants:    e.Participants,
		})
	}

	if err := ValidateSeed(seed); err != nil {
		return nil, err
	}
	return seed, nil
}

// ValidateSeed rejects catalogs that would break directory invariants:
// duplicate activity names, non-positive capacity, blank names, or an email
// listed twice on one roster.
func ValidateSeed(seed []domain.Activity) error {
	if len(seed) == 0 {
		return fmt.Errorf("seed contains no activities")
	}

	names := make(map[string]struct{}, len(seed))
	for _, act := range seed {
		if act.Name == "" {
			return fmt.Errorf("seed activity with empty name")
		}
		if _, dup := names[act.Name]; dup {
			return fmt.Errorf("duplicate activity name %q", act.Name)
		}
		names[act.Name] = struct{}{}

		if act.MaxParticipants <= 0 {
			return fmt.Errorf("activity %q: max_participants must be positive", act.Name)
		}

		emails := make(map[string]struct{}, len(act.Participants))
		for _, email := range act.Participants {
			if _, dup := emails[email]; dup {
				return fmt.Errorf("activity %q: duplicate participant %q", act.Name, email)
			}
			emails[email] = struct{}{}
		}
	}
	return nil
}
