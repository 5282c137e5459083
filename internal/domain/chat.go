package domain

import (
	"fmt"
	"strings"
)

// ChatRole represents the role of a chat message
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
)

// IsValid reports whether the role is one a client may submit.
func (r ChatRole) IsValid() bool {
	switch r {
	case ChatRole_User, ChatRole_Assistant, ChatRole_System:
		return true
	}
	return false
}

// ChatMessage is one entry of a chat turn.
type ChatMessage struct {
	Role    ChatRole `json:"role" yaml:"role"`
	Content string   `json:"content" yaml:"content"`
}

// ChatTurn is the ordered message history submitted by a client.
type ChatTurn []ChatMessage

// Validate checks that the turn can be sent to a backend.
func (t ChatTurn) Validate() error {
	if len(t) == 0 {
		return NewValidationErr("messages must not be empty")
	}
	for i, m := range t {
		if !m.Role.IsValid() {
			return NewValidationErr(fmt.Sprintf("messages[%d]: unknown role %q", i, m.Role))
		}
	}
	if _, ok := t.LatestUserMessage(); !ok {
		return NewValidationErr("messages must contain a user message")
	}
	return nil
}

// LatestUserMessage returns the most recent non-blank user message.
func (t ChatTurn) LatestUserMessage() (ChatMessage, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Role == ChatRole_User && strings.TrimSpace(t[i].Content) != "" {
			return t[i], true
		}
	}
	return ChatMessage{}, false
}

// StartsWithSystem reports whether the first message is a system message.
func (t ChatTurn) StartsWithSystem() bool {
	return len(t) > 0 && t[0].Role == ChatRole_System
}

// WithSystemFraming returns a copy of the turn with framing prepended, unless
// the turn already opens with a system message. The receiver is never modified.
func (t ChatTurn) WithSystemFraming(framing ChatMessage) ChatTurn {
	if t.StartsWithSystem() {
		out := make(ChatTurn, len(t))
		copy(out, t)
		return out
	}
	out := make(ChatTurn, 0, len(t)+1)
	out = append(out, framing)
	return append(out, t...)
}
