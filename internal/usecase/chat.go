package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"monastery-guide/internal/domain"
	"monastery-guide/internal/integrations/gemini"
	"monastery-guide/internal/render"
	"monastery-guide/internal/repository"
)

const (
	defaultMaxQuestion = 500

	// FallbackReply is rendered in place of a failed assistant reply. It is
	// never stored in the session history.
	FallbackReply = "Sorry, I encountered an error. Please try again later."
	// Greeting is shown when a chat view opens. It is not part of the history.
	Greeting = "Hello! I'm your AI monastery guide. Ask me anything about Sikkim's monasteries, Buddhist traditions, or travel tips."
)

// Assistant generates text for a single prompt.
type Assistant interface {
	Generate(ctx context.Context, prompt string, opts ...gemini.GenerateOption) (string, error)
}

// ChatView receives rendering instructions for one open chat window.
type ChatView interface {
	AppendBubble(turn domain.Turn, html string)
	ShowTyping()
	HideTyping()
}

type ChatService struct {
	assistant      Assistant
	sessions       *repository.Sessions
	logger         *zap.Logger
	maxQuestionLen int
}

func NewChatService(a Assistant, sessions *repository.Sessions, logger *zap.Logger, maxQuestionLen int) (*ChatService, error) {
	if a == nil {
		return nil, errors.New("usecase: assistant must not be nil")
	}
	if sessions == nil {
		return nil, errors.New("usecase: session store must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxQuestionLen <= 0 {
		maxQuestionLen = defaultMaxQuestion
	}
	return &ChatService{
		assistant:      a,
		sessions:       sessions,
		logger:         logger,
		maxQuestionLen: maxQuestionLen,
	}, nil
}

// StartSession opens an empty conversation.
func (s *ChatService) StartSession() string {
	return s.sessions.Create().ID()
}

// EndSession drops a conversation and its history.
func (s *ChatService) EndSession(sessionID string) {
	s.sessions.End(sessionID)
}

// History returns the turns of a session in order.
func (s *ChatService) History(sessionID string) ([]domain.Turn, error) {
	sess, ok := s.sessions.Get(strings.TrimSpace(sessionID))
	if !ok {
		return nil, newError(ErrorNotFound, "session_not_found", nil)
	}
	return sess.Turns(), nil
}

// Submit runs one chat turn. Assistant failures never surface as errors:
// they become the fallback bubble and leave only the user turn in the
// history. A non-nil error means the input was rejected before anything was
// appended.
//
// If ctx ends while the reply is pending the reply is discarded and the view
// is not touched again.
func (s *ChatService) Submit(ctx context.Context, view ChatView, sessionID, input string) (domain.TurnState, error) {
	question := strings.TrimSpace(input)
	if question == "" {
		return domain.TurnIdle, newError(ErrorInvalidInput, "empty_question", nil)
	}
	if len(question) > s.maxQuestionLen {
		return domain.TurnIdle, newError(ErrorInvalidInput, "question_too_long", nil)
	}
	if view == nil {
		return domain.TurnIdle, newError(ErrorInternal, "nil_view", nil)
	}
	sess, ok := s.sessions.Get(strings.TrimSpace(sessionID))
	if !ok {
		return domain.TurnIdle, newError(ErrorNotFound, "session_not_found", nil)
	}

	if err := sess.Lock(ctx); err != nil {
		return domain.TurnIdle, newError(ErrorInternal, "session_busy", err)
	}
	defer sess.Unlock()

	userTurn := domain.Turn{Role: domain.RoleUser, Content: question}
	sess.Append(userTurn)
	view.AppendBubble(userTurn, render.Bubble(question))
	view.ShowTyping()

	reply, err := s.assistant.Generate(ctx, buildAnswerPrompt(question))
	if ctx.Err() != nil {
		s.logger.Debug("chat reply discarded",
			zap.String("session_id", sess.ID()),
			zap.Error(ctx.Err()),
		)
		return domain.TurnDiscarded, nil
	}
	view.HideTyping()

	if err != nil {
		coded := classifyUpstream("assistant", err)
		fields := []zap.Field{
			zap.String("session_id", sess.ID()),
			zap.String("code", string(coded.Code)),
			zap.String("reason", coded.Reason),
			zap.Error(err),
		}
		if status, ok := upstreamStatusCode(err); ok {
			fields = append(fields, zap.Int("status", status))
		}
		s.logger.Error("chat assistant call failed", fields...)
		view.AppendBubble(domain.Turn{Role: domain.RoleBot, Content: FallbackReply}, render.Bubble(FallbackReply))
		return domain.TurnFailed, nil
	}

	botTurn := domain.Turn{Role: domain.RoleBot, Content: reply}
	sess.Append(botTurn)
	view.AppendBubble(botTurn, render.Bubble(reply))
	return domain.TurnRendered, nil
}
