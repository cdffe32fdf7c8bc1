package gateway

import (
	"context"

	"github.com/agrilease/agrilease/internal/app/domain/chat"
	"github.com/agrilease/agrilease/internal/app/store"
)

// FetchMessages loads a conversation's history, replacing that
// conversation's buffer.
func (g *Gateway) FetchMessages(ctx context.Context, conversationID string) *Task[[]chat.Message] {
	return dispatch(ctx, g, store.SliceChat, "chat.fetch_messages",
		func(ctx context.Context) ([]chat.Message, error) {
			return g.api.ListMessages(ctx, conversationID)
		},
		func(s *store.State, msgs []chat.Message) {
			if s.Chat.Messages == nil {
				s.Chat.Messages = make(map[string][]chat.Message)
			}
			s.Chat.Messages[conversationID] = msgs
		},
	)
}

// SendMessage appends an outgoing message to its conversation buffer,
// creating the buffer on first contact.
func (g *Gateway) SendMessage(ctx context.Context, in chat.Input) *Task[chat.Message] {
	return dispatch(ctx, g, store.SliceChat, "chat.send_message",
		func(ctx context.Context) (chat.Message, error) {
			return g.api.SendMessage(ctx, in)
		},
		func(s *store.State, msg chat.Message) {
			if s.Chat.Messages == nil {
				s.Chat.Messages = make(map[string][]chat.Message)
			}
			s.Chat.Messages[msg.ConversationID] = append(s.Chat.Messages[msg.ConversationID], msg)
		},
	)
}
