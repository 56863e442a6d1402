// Package search implements donor narrowing: pure predicate filters over the
// full in-memory donor set, plus stable sorting. Filtering and sorting never
// touch the server; the view loads the set once and recomputes locally.
package search

import (
	"sort"
	"strings"

	"lifelink/internal/donor/models"
)

// AnyType is the blood-type sentinel that disables the blood-type predicate.
const AnyType = "any-type"

// SortCriterion selects the ordering applied after filtering.
type SortCriterion string

const (
	// SortMostRecent orders by descending creation timestamp.
	SortMostRecent SortCriterion = "most-recent"
	// SortEmergencyFirst puts emergency-available donors first, ties broken
	// by descending creation timestamp.
	SortEmergencyFirst SortCriterion = "emergency-first"
)

// Filters are the three independent narrowing predicates. Zero values mean
// the corresponding predicate is skipped.
type Filters struct {
	BloodType     string
	Location      string
	EmergencyOnly bool
}

// Apply is a pure function composing the active predicates with logical AND.
// Predicate order does not affect the result. The input slice is never
// mutated.
func Apply(donors []models.Donor, f Filters) []models.Donor {
	out := make([]models.Donor, 0, len(donors))
	for _, d := range donors {
		if f.BloodType != "" && f.BloodType != AnyType && d.BloodType != f.BloodType {
			continue
		}
		if f.EmergencyOnly && !d.EmergencyAvailable {
			continue
		}
		if f.Location != "" && !matchesLocation(d, f.Location) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// matchesLocation is a case-insensitive substring match against city, state
// or address.
func matchesLocation(d models.Donor, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(d.City), q) ||
		strings.Contains(strings.ToLower(d.State), q) ||
		strings.Contains(strings.ToLower(d.Address), q)
}

// SortBy stably sorts a copy of donors by the given criterion. Unknown
// criteria fall back to most-recent.
func SortBy(donors []models.Donor, criterion SortCriterion) []models.Donor {
	out := make([]models.Donor, len(donors))
	copy(out, donors)

	switch criterion {
	case SortEmergencyFirst:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].EmergencyAvailable != out[j].EmergencyAvailable {
				return out[i].EmergencyAvailable
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}
