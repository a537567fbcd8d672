package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	app_errors "ui-architect/backend/internal/errors"
	"ui-architect/backend/internal/llm"
	"ui-architect/backend/internal/model"
	"ui-architect/backend/internal/repository"
)

// ReplyContent is the text of every assistant turn; the generated script is
// carried separately in Message.Code.
const ReplyContent = "Aqui está o código gerado para a sua biblioteca Roblox UI:"

// State is the orchestrator's request state.
type State int32

const (
	StateIdle State = iota
	StatePending
)

func (s State) String() string {
	if s == StatePending {
		return "pending"
	}
	return "idle"
}

// Outcome reports how a submission ended.
type Outcome int

const (
	// OutcomeIgnored: empty text or a request was already pending. Nothing
	// was appended.
	OutcomeIgnored Outcome = iota
	// OutcomeReplied: the assistant reply was appended.
	OutcomeReplied
	// OutcomeFailed: generation (or storing a turn) failed. Only the user
	// turn, if anything, was appended.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReplied:
		return "replied"
	case OutcomeFailed:
		return "failed"
	default:
		return "ignored"
	}
}

// ChatService runs at most one generation request at a time for the whole
// conversation and records both turns of each exchange in the repository.
type ChatService struct {
	repo    repository.Repository
	llm     llm.Generator
	timeout time.Duration
	now     func() time.Time

	mu    sync.Mutex
	state State
}

// ChatOption customizes a ChatService.
type ChatOption func(*ChatService)

// WithGenerationTimeout bounds each generator call. Zero means no bound.
func WithGenerationTimeout(d time.Duration) ChatOption {
	return func(s *ChatService) { s.timeout = d }
}

// WithClock replaces time.Now for message timestamps.
func WithClock(now func() time.Time) ChatOption {
	return func(s *ChatService) { s.now = now }
}

func NewChatService(repo repository.Repository, generator llm.Generator, opts ...ChatOption) *ChatService {
	s := &ChatService{repo: repo, llm: generator, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current request state.
func (s *ChatService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsPending reports whether a generation request is in flight.
func (s *ChatService) IsPending() bool {
	return s.State() == StatePending
}

// Messages returns the conversation in order.
func (s *ChatService) Messages(ctx context.Context) ([]model.Message, error) {
	messages, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get messages: %w: %w", app_errors.ErrInternal, err)
	}
	return messages, nil
}

// Submit sends userText with the given settings and blocks until the
// request has finished.
func (s *ChatService) Submit(ctx context.Context, userText string, settings model.GenerationSettings) Outcome {
	done, ok := s.SubmitAsync(ctx, userText, settings)
	if !ok {
		return OutcomeIgnored
	}
	return <-done
}

// SubmitAsync records the user turn, moves to Pending and starts the
// generation in the background. ok is false when the submission was ignored
// (blank text, or a request is already pending). Otherwise done receives the
// final outcome exactly once.
//
// settings is copied before SubmitAsync returns, so later changes by the
// caller do not reach the in-flight request. The request is detached from
// ctx cancellation: once accepted it always runs to completion.
func (s *ChatService) SubmitAsync(ctx context.Context, userText string, settings model.GenerationSettings) (done <-chan Outcome, ok bool) {
	text := strings.TrimSpace(userText)
	if text == "" {
		return nil, false
	}
	snapshot := settings.Snapshot()
	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	if s.state == StatePending {
		s.mu.Unlock()
		slog.Debug("Ignoring submission while a request is pending")
		return nil, false
	}
	userMessage := &model.Message{ID: uuid.NewString(), Role: model.RoleUser, Content: text, CreatedAt: s.now()}
	if err := s.repo.Append(ctx, userMessage); err != nil {
		s.mu.Unlock()
		slog.Error("Failed to save user message", "error", err)
		result := make(chan Outcome, 1)
		result <- OutcomeFailed
		return result, true
	}
	s.state = StatePending
	s.mu.Unlock()

	result := make(chan Outcome, 1)
	go func() {
		result <- s.generate(ctx, userMessage, snapshot)
	}()
	return result, true
}

// generate performs the suspending half of a submission. The state returns
// to Idle only after the assistant turn, if any, has been appended.
func (s *ChatService) generate(ctx context.Context, userMessage *model.Message, snapshot model.GenerationSettings) (outcome Outcome) {
	defer s.setIdle()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Generator panicked", "message_id", userMessage.ID, "panic", r)
			outcome = OutcomeFailed
		}
	}()

	genCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	code, err := s.llm.Generate(genCtx, userMessage.Content, snapshot)
	if err != nil {
		slog.Error("Generation failed", "message_id", userMessage.ID, "duration", time.Since(started), "error", err)
		return OutcomeFailed
	}

	assistantMessage := &model.Message{
		ID:        uuid.NewString(),
		Role:      model.RoleAssistant,
		Content:   ReplyContent,
		Code:      &code,
		CreatedAt: s.now(),
	}
	if err := s.repo.Append(ctx, assistantMessage); err != nil {
		slog.Error("Failed to save assistant message", "message_id", assistantMessage.ID, "error", err)
		return OutcomeFailed
	}
	slog.Info("Generated library", "message_id", assistantMessage.ID, "duration", time.Since(started), "code_bytes", len(code))
	return OutcomeReplied
}

func (s *ChatService) setIdle() {
	s.mu.Lock()
	s.state = StateIdle
	s.mu.Unlock()
}
