package catalog

import (
	"fmt"

	"monastery-guide/internal/domain"
)

const defaultPageSize = 3

// Listing is the paged card grid state for one page view. Loading past the
// end of the catalog appends synthetic placeholder entries; existing entries
// are never modified.
type Listing struct {
	entries  []domain.Monastery
	shown    int
	pageSize int
	extra    int
}

// NewListing starts a listing over the catalog with the first page visible.
func (c *Catalog) NewListing() *Listing {
	l := &Listing{entries: c.GetAll(), pageSize: defaultPageSize}
	l.shown = min(l.pageSize, len(l.entries))
	return l
}

// Visible returns the entries currently shown.
func (l *Listing) Visible() []domain.Monastery {
	out := make([]domain.Monastery, l.shown)
	copy(out, l.entries[:l.shown])
	return out
}

// LoadMore reveals the next page, or appends one placeholder entry when the
// catalog is exhausted, and returns the visible entries.
func (l *Listing) LoadMore() []domain.Monastery {
	if l.shown >= len(l.entries) {
		l.entries = append(l.entries, l.placeholder())
	}
	l.shown = min(l.shown+l.pageSize, len(l.entries))
	return l.Visible()
}

// Exhausted reports whether every real catalog entry is visible.
func (l *Listing) Exhausted() bool {
	return l.shown >= len(l.entries)
}

func (l *Listing) placeholder() domain.Monastery {
	l.extra++
	id := 1000 + l.extra
	return domain.Monastery{
		ID:             id,
		Name:           fmt.Sprintf("Featured Monastery %d", l.extra),
		Location:       "Sikkim",
		Description:    "More monasteries are being added to the guide. Check back soon for a full profile.",
		Image:          "images/mountains.jpeg",
		VirtualTourURL: "#",
		Festivals:      []string{},
	}
}
