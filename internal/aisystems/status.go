package aisystems

import (
	"encoding/json"
	"slices"
)

// Status represents an AI system's position in the compliance lifecycle.
type Status string

// Valid lifecycle statuses. A system starts as draft, becomes assessed once
// classified, moves to remediation while obligations remain open, and ends
// compliant when every task is closed.
const (
	StatusDraft       Status = "draft"
	StatusAssessed    Status = "assessed"
	StatusRemediation Status = "remediation"
	StatusCompliant   Status = "compliant"
)

var statuses = []Status{
	StatusDraft,
	StatusAssessed,
	StatusRemediation,
	StatusCompliant,
}

// Statuses returns the list of valid lifecycle statuses.
func Statuses() []Status {
	return statuses
}

// UnmarshalJSON validates that the decoded string is a known status value.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Status(raw)
	if !slices.Contains(statuses, v) {
		return ErrInvalidStatus
	}
	*s = v
	return nil
}

// ParseStatus validates a string as a known lifecycle status.
// Returns ErrInvalidStatus if the value is not recognized.
func ParseStatus(s string) (Status, error) {
	v := Status(s)
	if !slices.Contains(statuses, v) {
		return "", ErrInvalidStatus
	}
	return v, nil
}
