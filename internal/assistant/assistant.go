package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

var (
	ErrSessionNotFound = errors.New("assistant: session not found")
	ErrEmptyMessage    = errors.New("assistant: message is empty")
)

type Message struct {
	ID     string    `json:"id"`
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}

type Session struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
}

// Engine answers consultation questions from a static rule table.
// Conversations live in memory and are lost on restart.
type Engine struct {
	rules       Rules
	delay       time.Duration
	maxMessages int
	now         func() time.Time
	log         zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewEngine(rules Rules, delay time.Duration, maxMessages int, log zerolog.Logger) *Engine {
	return &Engine{
		rules:       rules,
		delay:       delay,
		maxMessages: maxMessages,
		now:         time.Now,
		log:         log.With().Str("component", "assistant").Logger(),
		sessions:    make(map[string]*Session),
	}
}

// Reply returns the canned response for message and the rule that chose it.
func (e *Engine) Reply(message string) (string, string) {
	if rule, ok := e.rules.match(message); ok {
		return rule.Response, rule.Name
	}
	return FallbackResponse, "fallback"
}

func (e *Engine) StartSession() Session {
	s := &Session{ID: uuid.NewString(), Messages: []Message{}, CreatedAt: e.now()}
	e.mu.Lock()
	e.sessions[s.ID] = s
	e.mu.Unlock()
	e.log.Debug().Str("session", s.ID).Msg("session started")
	return copySession(s)
}

func (e *Engine) Session(id string) (Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return copySession(s), nil
}

func (e *Engine) EndSession(id string) {
	e.mu.Lock()
	delete(e.sessions, id)
	e.mu.Unlock()
}

// Ask appends the user's message, waits the configured delay and appends
// the response. If ctx ends during the delay, the user's message stays in
// the history and no response is added.
func (e *Engine) Ask(ctx context.Context, sessionID, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}
	if err := e.append(sessionID, SenderUser, text); err != nil {
		return Message{}, err
	}

	response, rule := e.Reply(text)

	if e.delay > 0 {
		timer := time.NewTimer(e.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Message{}, ctx.Err()
		case <-timer.C:
		}
	}

	msg := Message{ID: uuid.NewString(), Sender: SenderAssistant, Text: response, SentAt: e.now()}
	if err := e.appendMessage(sessionID, msg); err != nil {
		return Message{}, err
	}
	e.log.Debug().Str("session", sessionID).Str("rule", rule).Msg("answered")
	return msg, nil
}

func (e *Engine) append(sessionID, sender, text string) error {
	return e.appendMessage(sessionID, Message{ID: uuid.NewString(), Sender: sender, Text: text, SentAt: e.now()})
}

func (e *Engine) appendMessage(sessionID string, msg Message) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	s.Messages = append(s.Messages, msg)
	if e.maxMessages > 0 && len(s.Messages) > e.maxMessages {
		s.Messages = append([]Message(nil), s.Messages[len(s.Messages)-e.maxMessages:]...)
	}
	return nil
}

func copySession(s *Session) Session {
	out := *s
	out.Messages = make([]Message, len(s.Messages))
	copy(out.Messages, s.Messages)
	return out
}
