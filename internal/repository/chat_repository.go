package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jithinvs/krishi-mitra/internal/model"
)

// ChatRepo persists chat messages and the per-farmer reference list. The
// reference list is the chat_refs table ordered by its auto-increment id, so
// an append is one transaction instead of the read-modify-write that loses
// updates under concurrent posts.
type ChatRepo struct{ DB *sql.DB }

func NewChatRepo(db *sql.DB) *ChatRepo { return &ChatRepo{DB: db} }

// Append stores one message and links it to the farmer's list atomically.
func (r *ChatRepo) Append(ctx context.Context, farmerID uint64, sender, text string) (model.ChatMessage, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return model.ChatMessage{}, err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx,
		"INSERT INTO chat_messages (sender, message, created_at) VALUES (?,?,?)",
		sender, text, now)
	if err != nil {
		return model.ChatMessage{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.ChatMessage{}, err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO chat_refs (farmer_id, message_id) VALUES (?,?)",
		farmerID, uint64(id)); err != nil {
		return model.ChatMessage{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.ChatMessage{}, err
	}
	return model.ChatMessage{
		ID:        uint64(id),
		Sender:    sender,
		Message:   text,
		CreatedAt: now,
	}, nil
}

// ListByFarmer resolves the farmer's reference list in append order. A
// farmer with no messages yields an empty slice, not an error.
func (r *ChatRepo) ListByFarmer(ctx context.Context, farmerID uint64) ([]model.ChatMessage, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT m.id, m.sender, m.message, m.created_at
		   FROM chat_refs r
		   JOIN chat_messages m ON m.id = r.message_id
		  WHERE r.farmer_id = ?
		  ORDER BY r.id`,
		farmerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := make([]model.ChatMessage, 0)
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.Sender, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
