package mentor

import (
	"context"
	"slices"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/alexanderramin/skillswap/internal/domain"
)

// Conversation is one user's chat transcript, opened by the Greeting.
type Conversation struct {
	mu    sync.Mutex
	turns []domain.ChatMessage
}

func NewConversation(now time.Time) *Conversation {
	return &Conversation{turns: []domain.ChatMessage{{
		Role:      domain.RoleAssistant,
		Content:   Greeting,
		Source:    SourceLocal,
		Timestamp: now.UTC(),
	}}}
}

// Send records the user's message, asks the mentor and records its reply.
// Nothing is recorded when the prompt is rejected.
func (c *Conversation) Send(ctx context.Context, svc Service, userID, message string, now time.Time) (*Reply, error) {
	reply, err := svc.SendChatPrompt(ctx, userID, message)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = append(c.turns,
		domain.ChatMessage{Role: domain.RoleUser, Content: message, Timestamp: now.UTC()},
		domain.ChatMessage{Role: domain.RoleAssistant, Content: reply.Text, Source: reply.Source, Timestamp: reply.Timestamp},
	)
	return reply, nil
}

// Turns returns a copy of the transcript.
func (c *Conversation) Turns() []domain.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.turns)
}

// Transcripts keeps the most recent conversations per user in memory.
type Transcripts struct {
	mu    sync.Mutex
	cache *lru.Cache
	now   func() time.Time
}

func NewTranscripts(size int) (*Transcripts, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Transcripts{cache: cache, now: time.Now}, nil
}

// For returns the user's conversation, starting one if needed.
func (t *Transcripts) For(userID string) *Conversation {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.cache.Get(userID); ok {
		return v.(*Conversation)
	}
	conv := NewConversation(t.now())
	t.cache.Add(userID, conv)
	return conv
}
