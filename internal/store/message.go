package store

import (
	"context"
	"database/sql"
	"fmt"
)

type messageRepo struct {
	db *sql.DB
}

func (r *messageRepo) Append(ctx context.Context, msg *Message) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO messages
			(conversation_id, learner_id, persona_id, user_message,
			 reply_english, reply_roman, reply_gurmukhi, language)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		msg.ConversationID, msg.LearnerID, msg.PersonaID, msg.UserMessage,
		msg.ReplyEnglish, msg.ReplyRoman, msg.ReplyGurmukhi, msg.Language,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("message insert id: %w", err)
	}
	msg.ID = id
	return nil
}

func (r *messageRepo) Recent(ctx context.Context, conversationID string, limit int) ([]*Message, error) {
	// Take the newest rows, then flip to chronological order.
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, conversation_id, learner_id, persona_id, user_message,
			reply_english, reply_roman, reply_gurmukhi, language, created_at
		 FROM messages
		 WHERE conversation_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		conversationID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var msgs []*Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(
			&m.ID, &m.ConversationID, &m.LearnerID, &m.PersonaID,
			&m.UserMessage, &m.ReplyEnglish, &m.ReplyRoman, &m.ReplyGurmukhi,
			&m.Language, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
