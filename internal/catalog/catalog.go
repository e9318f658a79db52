package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"monastery-guide/internal/domain"
)

// SortOrder selects how Sorted orders monasteries.
type SortOrder string

const (
	SortDefault SortOrder = ""
	SortNewest  SortOrder = "newest"
	SortOldest  SortOrder = "oldest"
)

// Catalog is the read-only monastery and festival data set.
type Catalog struct {
	monasteries []domain.Monastery
	festivals   []domain.Festival
}

// New returns the built-in Sikkim catalog.
func New() *Catalog {
	return NewWith(defaultMonasteries(), defaultFestivals())
}

// NewWith builds a catalog over the given records. The slices are copied.
func NewWith(monasteries []domain.Monastery, festivals []domain.Festival) *Catalog {
	c := &Catalog{
		monasteries: make([]domain.Monastery, 0, len(monasteries)),
		festivals:   slices.Clone(festivals),
	}
	for _, m := range monasteries {
		c.monasteries = append(c.monasteries, cloneMonastery(m))
	}
	return c
}

// GetByID returns the monastery with the given id. A miss is reported as
// ok == false, never as an error.
func (c *Catalog) GetByID(id int) (domain.Monastery, bool) {
	for _, m := range c.monasteries {
		if m.ID == id {
			return cloneMonastery(m), true
		}
	}
	return domain.Monastery{}, false
}

// GetAll returns every monastery in catalog order.
func (c *Catalog) GetAll() []domain.Monastery {
	out := make([]domain.Monastery, 0, len(c.monasteries))
	for _, m := range c.monasteries {
		out = append(out, cloneMonastery(m))
	}
	return out
}

func (c *Catalog) Festivals() []domain.Festival {
	return slices.Clone(c.festivals)
}

func (c *Catalog) FestivalByID(id int) (domain.Festival, bool) {
	for _, f := range c.festivals {
		if f.ID == id {
			return f, true
		}
	}
	return domain.Festival{}, false
}

// Search matches term case-insensitively against name, location and
// description. An empty term matches everything.
func (c *Catalog) Search(term string) []domain.Monastery {
	return filter(c.GetAll(), term)
}

// Sorted returns the monasteries ordered by founding year. Unknown orders
// keep catalog order.
func (c *Catalog) Sorted(order SortOrder) []domain.Monastery {
	return sortMonasteries(c.GetAll(), order)
}

// Query combines Search and Sorted.
func (c *Catalog) Query(term string, order SortOrder) []domain.Monastery {
	if strings.TrimSpace(term) == "" {
		return c.Sorted(order)
	}
	return sortMonasteries(c.Search(term), order)
}

// Valid reports whether o is a known sort order.
func (o SortOrder) Valid() bool {
	switch o {
	case SortDefault, SortNewest, SortOldest:
		return true
	}
	return false
}

// Panorama returns the virtual tour configuration for a monastery.
func (c *Catalog) Panorama(id int) (domain.PanoramaConfig, bool) {
	if _, ok := c.GetByID(id); !ok {
		return domain.PanoramaConfig{}, false
	}
	return defaultPanorama(), true
}

// AudioLanguages lists the narration languages audio guides exist in.
var AudioLanguages = []string{"en", "hi", "ne", "bo"}

// DefaultAudioLanguage is used when no language is requested.
const DefaultAudioLanguage = "en"

// AudioLanguageSupported reports whether lang is one of AudioLanguages.
func AudioLanguageSupported(lang string) bool {
	return slices.Contains(AudioLanguages, lang)
}

// AudioGuide returns the audio file for a monastery in one language. The
// path is relative to the site root.
func (c *Catalog) AudioGuide(id int, lang string) (domain.AudioGuide, bool) {
	if !AudioLanguageSupported(lang) {
		return domain.AudioGuide{}, false
	}
	if _, ok := c.GetByID(id); !ok {
		return domain.AudioGuide{}, false
	}
	return domain.AudioGuide{
		MonasteryID: id,
		Language:    lang,
		Src:         fmt.Sprintf("audio/%d/%s.mp3", id, lang),
	}, true
}

func filter(in []domain.Monastery, term string) []domain.Monastery {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return in
	}
	out := make([]domain.Monastery, 0, len(in))
	for _, m := range in {
		if strings.Contains(strings.ToLower(m.Name), term) ||
			strings.Contains(strings.ToLower(m.Location), term) ||
			strings.Contains(strings.ToLower(m.Description), term) {
			out = append(out, m)
		}
	}
	return out
}

func sortMonasteries(in []domain.Monastery, order SortOrder) []domain.Monastery {
	switch order {
	case SortNewest:
		slices.SortStableFunc(in, func(a, b domain.Monastery) int { return cmp.Compare(b.Year, a.Year) })
	case SortOldest:
		slices.SortStableFunc(in, func(a, b domain.Monastery) int { return cmp.Compare(a.Year, b.Year) })
	}
	return in
}

func cloneMonastery(m domain.Monastery) domain.Monastery {
	m.Festivals = slices.Clone(m.Festivals)
	return m
}
