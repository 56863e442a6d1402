package search

import (
	"context"
	"sync"

	"lifelink/internal/donor/models"
)

// Lister fetches the complete donor set.
type Lister interface {
	List(ctx context.Context) ([]models.Donor, error)
}

// View holds the donor set loaded once plus the current filter and sort
// selection. Every selection change recomputes the visible list from the
// held full set, never from the server; a failed load is recovered only by
// calling Load again.
type View struct {
	lister Lister

	mu        sync.Mutex
	donors    []models.Donor
	loaded    bool
	loadErr   error
	filters   Filters
	criterion SortCriterion
}

func NewView(lister Lister) *View {
	return &View{lister: lister, criterion: SortMostRecent}
}

// Load fetches the full donor set. Calling it again after a failure retries
// the same request; calling it after a success refreshes the held set.
func (v *View) Load(ctx context.Context) error {
	donors, err := v.lister.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.loaded = false
		v.loadErr = err
		return err
	}
	v.donors = donors
	v.loaded = true
	v.loadErr = nil
	return nil
}

// Loaded reports whether a load has succeeded.
func (v *View) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}

// LoadError returns the error of the last failed load, nil after a success.
func (v *View) LoadError() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loadErr
}

// SetFilters replaces the filter selection.
func (v *View) SetFilters(f Filters) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filters = f
}

// SetSort replaces the sort criterion.
func (v *View) SetSort(c SortCriterion) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criterion = c
}

// Visible recomputes the filtered-then-sorted list from the held full set.
// The order of operations matters: sort applies to the filtered set.
func (v *View) Visible() []models.Donor {
	v.mu.Lock()
	defer v.mu.Unlock()
	return SortBy(Apply(v.donors, v.filters), v.criterion)
}
