package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"monastery-guide/internal/domain"
	"monastery-guide/internal/integrations/gemini"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

type assistantResponse struct {
	text string
	err  error
}

type mockAssistant struct {
	mu        sync.Mutex
	responses []assistantResponse
	prompts   []string
	calls     atomic.Int32

	// gate, when set, blocks Generate until it is closed or ctx ends.
	gate    chan struct{}
	started chan struct{}
}

func (m *mockAssistant) Generate(ctx context.Context, prompt string, _ ...gemini.GenerateOption) (string, error) {
	n := int(m.calls.Add(1)) - 1
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.started != nil {
		select {
		case m.started <- struct{}{}:
		default:
		}
	}
	if m.gate != nil {
		select {
		case <-m.gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if len(m.responses) == 0 {
		return "", errors.New("no assistant response configured")
	}
	if n >= len(m.responses) {
		n = len(m.responses) - 1
	}
	return m.responses[n].text, m.responses[n].err
}

func (m *mockAssistant) lastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

func replying(text string) *mockAssistant {
	return &mockAssistant{responses: []assistantResponse{{text: text}}}
}

func failing(err error) *mockAssistant {
	return &mockAssistant{responses: []assistantResponse{{err: err}}}
}

type viewEvent struct {
	kind string
	turn domain.Turn
	html string
}

type recordingView struct {
	mu     sync.Mutex
	events []viewEvent
}

func (v *recordingView) AppendBubble(turn domain.Turn, html string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, viewEvent{kind: "bubble", turn: turn, html: html})
}

func (v *recordingView) ShowTyping() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, viewEvent{kind: "typing_on"})
}

func (v *recordingView) HideTyping() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, viewEvent{kind: "typing_off"})
}

func (v *recordingView) kinds() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, 0, len(v.events))
	for _, e := range v.events {
		out = append(out, e.kind)
	}
	return out
}

func (v *recordingView) bubbles() []viewEvent {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []viewEvent
	for _, e := range v.events {
		if e.kind == "bubble" {
			out = append(out, e)
		}
	}
	return out
}

type mapCatalog map[int]domain.Monastery

func (c mapCatalog) GetByID(id int) (domain.Monastery, bool) {
	m, ok := c[id]
	return m, ok
}

func testCatalog() mapCatalog {
	return mapCatalog{
		1: {
			ID:        1,
			Name:      "Rumtek Monastery",
			Location:  "Gangtok, East Sikkim",
			Year:      1740,
			Festivals: []string{"Losar", "Saga Dawa"},
		},
		2: {
			ID:        2,
			Name:      "Pemayangtse Monastery",
			Location:  "Pelling, West Sikkim",
			Year:      1705,
			Festivals: []string{"Cham Dance"},
		},
	}
}

func expectUsecaseError(t *testing.T, err error, code ErrorCode, reason string) {
	t.Helper()
	var usecaseErr *Error
	require.ErrorAs(t, err, &usecaseErr)
	require.Equal(t, code, usecaseErr.Code)
	require.Equal(t, reason, usecaseErr.Reason)
}
