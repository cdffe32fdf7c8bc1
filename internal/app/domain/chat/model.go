// Package chat defines conversation messages between owners and seekers.
package chat

import (
	"fmt"
	"strings"
	"time"
)

// Message is a single chat line. Messages are immutable once created except
// for the read flag, which flips through a bulk mark-as-read action.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	ReceiverID     string    `json:"receiverId"`
	Body           string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
	Read           bool      `json:"read"`
}

// ConversationID derives the grouping key for a pair of participants. The
// key is order-independent so both sides resolve the same conversation.
func ConversationID(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + ":" + b
}

// Input carries the caller-supplied fields of an outgoing message.
type Input struct {
	ConversationID string
	SenderID       string
	ReceiverID     string
	Body           string
}

// Validate checks the structural invariants of an outgoing message.
func (in Input) Validate() error {
	if strings.TrimSpace(in.ConversationID) == "" {
		return fmt.Errorf("conversation id is required")
	}
	if strings.TrimSpace(in.SenderID) == "" {
		return fmt.Errorf("sender id is required")
	}
	if strings.TrimSpace(in.ReceiverID) == "" {
		return fmt.Errorf("receiver id is required")
	}
	if strings.TrimSpace(in.Body) == "" {
		return fmt.Errorf("message body is required")
	}
	return nil
}
