package usecase

import (
	"context"
	"sync"

	"monastery-guide/internal/domain"
)

// PanelTab is what one insights tab currently shows.
type PanelTab struct {
	Topic  domain.TopicKind `json:"topic"`
	HTML   string           `json:"html,omitempty"`
	Error  string           `json:"error,omitempty"`
	Loaded bool             `json:"loaded"`
}

// InsightPanel is one opened insights view for a monastery. A tab that has
// rendered content is never fetched again; a tab that failed may be retried.
type InsightPanel struct {
	insights *InsightService
	entityID int

	mu     sync.Mutex
	active domain.TopicKind
	tabs   map[domain.TopicKind]*PanelTab
}

// OpenPanel creates a panel and loads the description tab.
func (s *InsightService) OpenPanel(ctx context.Context, entityID int) (*InsightPanel, error) {
	if _, ok := s.catalog.GetByID(entityID); !ok {
		return nil, newError(ErrorNotFound, "entity_not_found", &EntityNotFoundError{ID: entityID})
	}
	p := &InsightPanel{
		insights: s,
		entityID: entityID,
		tabs:     make(map[domain.TopicKind]*PanelTab, len(domain.Topics)),
	}
	for _, t := range domain.Topics {
		p.tabs[t] = &PanelTab{Topic: t}
	}
	p.Select(ctx, domain.TopicDescription)
	return p, nil
}

// Select activates a tab and loads it if it has no content yet.
func (p *InsightPanel) Select(ctx context.Context, topic domain.TopicKind) PanelTab {
	p.mu.Lock()
	tab, ok := p.tabs[topic]
	if !ok {
		p.mu.Unlock()
		return PanelTab{Topic: topic, Error: (&InvalidTopicError{Topic: topic}).Error()}
	}
	p.active = topic
	if tab.Loaded {
		out := *tab
		p.mu.Unlock()
		return out
	}
	p.mu.Unlock()

	html, err := p.insights.GetInsight(ctx, p.entityID, topic)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		tab.Error = "Error generating content: " + err.Error()
		return *tab
	}
	tab.HTML = html
	tab.Error = ""
	tab.Loaded = true
	return *tab
}

func (p *InsightPanel) Active() domain.TopicKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Tabs returns every tab in display order.
func (p *InsightPanel) Tabs() []PanelTab {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]PanelTab, 0, len(domain.Topics))
	for _, t := range domain.Topics {
		out = append(out, *p.tabs[t])
	}
	return out
}
