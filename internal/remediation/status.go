package remediation

import "slices"

// Status represents the lifecycle state of a remediation task.
type Status string

const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
)

var statuses = []Status{StatusOpen, StatusCompleted}

// ParseStatus validates a string as a known task status.
// Returns ErrInvalidStatus if the value is not recognized.
func ParseStatus(s string) (Status, error) {
	v := Status(s)
	if !slices.Contains(statuses, v) {
		return "", ErrInvalidStatus
	}
	return v, nil
}
