package types

import "fmt"

// ComparisonStatus is the result of a three-way commit comparison
// between a base ref and a head ref.
type ComparisonStatus string

const (
	StatusAhead     ComparisonStatus = "ahead"
	StatusBehind    ComparisonStatus = "behind"
	StatusIdentical ComparisonStatus = "identical"
	StatusDiverged  ComparisonStatus = "diverged"
)

// ParseComparisonStatus validates a status string returned by the API.
func ParseComparisonStatus(s string) (ComparisonStatus, error) {
	switch status := ComparisonStatus(s); status {
	case StatusAhead, StatusBehind, StatusIdentical, StatusDiverged:
		return status, nil
	default:
		return "", fmt.Errorf("unknown comparison status %q", s)
	}
}

// Contained reports whether a base at this status already holds every
// commit reachable from the head. The status is computed base..head, so
// "behind" means the base has all of the head's commits and more.
func (s ComparisonStatus) Contained() bool {
	return s == StatusBehind || s == StatusIdentical
}
