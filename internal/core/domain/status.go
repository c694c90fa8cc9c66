package domain

// ApplicationStatus is the closed set of lifecycle states an application moves
// through. Individual pipeline steps never invent statuses; they request
// transitions against the table below.
type ApplicationStatus string

const (
	StatusReceived ApplicationStatus = "RECEIVED"
	StatusInReview ApplicationStatus = "IN_REVIEW"
	StatusDecided  ApplicationStatus = "DECIDED"
)

// allowedTransitions is the full transition table. An application starts in
// RECEIVED, moves to IN_REVIEW when the first scoring artifact is written, and
// to DECIDED when an account or facility is opened.
var allowedTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusReceived: {StatusInReview, StatusDecided},
	StatusInReview: {StatusDecided},
	StatusDecided:  {},
}

// CanTransition reports whether moving from one status to another is allowed.
// A no-op transition (same status) is always allowed.
func CanTransition(from, to ApplicationStatus) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsDecided reports whether the application has reached its terminal state.
func (s ApplicationStatus) IsDecided() bool {
	return s == StatusDecided
}

// ValidStatus reports whether s belongs to the closed status set.
func ValidStatus(s ApplicationStatus) bool {
	_, ok := allowedTransitions[s]
	return ok
}
