// Package chat implements the scripted companion conversation.
package chat

import (
	"errors"
	"strings"
	"sync"
	"time"

	"airportmind/internal/core/model"

	"github.com/google/uuid"
)

// ErrEmptyMessage is returned when the user submits only whitespace.
var ErrEmptyMessage = errors.New("empty message")

// Message is one line of the conversation.
type Message struct {
	ID       string
	Text     string
	FromUser bool
	At       time.Time
}

// Companion answers every message with the same reassuring reply.
type Companion struct {
	mu      sync.Mutex
	reply   string
	history []Message
	now     func() time.Time
}

// NewCompanion starts a conversation with the configured greeting.
func NewCompanion(config model.ChatConfig) *Companion {
	defaults := model.DefaultConfig().Chat
	if strings.TrimSpace(config.Greeting) == "" {
		config.Greeting = defaults.Greeting
	}
	if strings.TrimSpace(config.Reply) == "" {
		config.Reply = defaults.Reply
	}

	companion := &Companion{
		reply: config.Reply,
		now:   time.Now,
	}
	companion.history = []Message{companion.newMessage(config.Greeting, false)}
	return companion
}

// Submit records text from the user followed by the companion reply.
func (companion *Companion) Submit(text string) ([]Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	companion.mu.Lock()
	defer companion.mu.Unlock()
	added := []Message{
		companion.newMessage(text, true),
		companion.newMessage(companion.reply, false),
	}
	companion.history = append(companion.history, added...)
	return added, nil
}

// History returns the conversation so far.
func (companion *Companion) History() []Message {
	companion.mu.Lock()
	defer companion.mu.Unlock()
	return append([]Message(nil), companion.history...)
}

func (companion *Companion) newMessage(text string, fromUser bool) Message {
	return Message{
		ID:       uuid.NewString(),
		Text:     text,
		FromUser: fromUser,
		At:       companion.now(),
	}
}
