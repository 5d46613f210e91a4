package domain

// Activity is a named extracurricular offering with a capacity and a roster.
// Name doubles as the directory key and is unique across the process.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	// Participants holds enrolled student emails in signup order. An email
	// appears at most once. MaxParticipants is descriptive only and is not
	// enforced against the roster length.
	Participants []string
}

// Clone returns a deep copy so callers cannot mutate the stored roster.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// HasParticipant reports whether email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
