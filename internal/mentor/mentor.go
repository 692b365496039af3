package mentor

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/skillswap/internal/llm"
	"github.com/alexanderramin/skillswap/internal/logger"
)

// Reply sources.
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
	SourceLocal    = "local"
)

// ErrEmptyMessage is returned for blank prompts.
var ErrEmptyMessage = errors.New("message is empty")

// Reply is one mentor answer.
type Reply struct {
	Text      string    `json:"response"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// ContextLoader supplies the profile and skills used to personalize prompts.
type ContextLoader interface {
	MentorContext(ctx context.Context, userID string) (*UserContext, error)
}

// Service answers chat prompts.
type Service interface {
	SendChatPrompt(ctx context.Context, userID, message string) (*Reply, error)
}

type service struct {
	client        llm.Client
	loader        ContextLoader
	log           *logger.Logger
	now           func() time.Time
	fallbackDelay time.Duration
}

type Option func(*service)

func WithLogger(l *logger.Logger) Option { return func(s *service) { s.log = l } }

func WithClock(now func() time.Time) Option { return func(s *service) { s.now = now } }

// WithFallbackDelay pauses before local replies so they pace like a remote call.
func WithFallbackDelay(d time.Duration) Option { return func(s *service) { s.fallbackDelay = d } }

// NewService builds the mentor. A nil client answers every prompt locally.
func NewService(client llm.Client, loader ContextLoader, opts ...Option) Service {
	s := &service{
		client: client,
		loader: loader,
		log:    logger.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) SendChatPrompt(ctx context.Context, userID, message string) (*Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	uc := s.userContext(ctx, userID)

	if s.client == nil {
		if err := sleepCtx(ctx, s.fallbackDelay); err != nil {
			return nil, err
		}
		return s.reply(LocalReply(message, uc.Profile.DisplayName), SourceLocal), nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskMentorChat,
		SystemPrompt: BuildSystemPrompt(uc),
		UserPrompt:   message,
	})
	if err != nil {
		s.log.Warn("mentor chat failed", "user_id", userID, "error", err)
		return s.reply(Apology, SourceFallback), nil
	}
	return s.reply(strings.TrimSpace(resp.Text), SourceLLM), nil
}

// userContext never fails the chat; a missing profile only makes the prompt generic.
func (s *service) userContext(ctx context.Context, userID string) UserContext {
	if s.loader == nil {
		return UserContext{}
	}
	uc, err := s.loader.MentorContext(ctx, userID)
	if err != nil {
		s.log.Warn("mentor context unavailable", "user_id", userID, "error", err)
		return UserContext{}
	}
	return *uc
}

func (s *service) reply(text, source string) *Reply {
	return &Reply{Text: text, Source: source, Timestamp: s.now().UTC()}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
