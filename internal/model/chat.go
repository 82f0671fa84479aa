package model

import "time"

// Sender tags on chat messages. The wire values match the original mobile
// clients, so "user" means the farmer role.
const (
	SenderUser = "user"
	SenderAgri = "agri"
	SenderAI   = "ai"
)

// ChatMessage is one immutable turn of a conversation, stored in the
// `chat_messages` table. A message carries no owner column; ownership is the
// referencing row in `chat_refs`, whose auto-increment id preserves append
// order.
type ChatMessage struct {
	ID        uint64    `json:"id"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
