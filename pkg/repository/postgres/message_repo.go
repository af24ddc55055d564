package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ahmadblivin/studybuddy/pkg/chat"
)

// MessageRepository хранит единый журнал сообщений общего чата.
type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) (*MessageRepository, error) {
	r := &MessageRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *MessageRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS chat_messages (
	id UUID PRIMARY KEY,
	sender_email TEXT NOT NULL,
	sender_name TEXT NOT NULL,
	text TEXT NOT NULL,
	ts TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chat_messages_ts ON chat_messages(ts);
`)
	return err
}

func (r *MessageRepository) Create(ctx context.Context, m chat.Message) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO chat_messages (id, sender_email, sender_name, text, ts)
VALUES ($1, $2, $3, $4, $5)
`, m.ID, m.SenderEmail, m.SenderName, m.Text, m.Timestamp)
	return err
}

// ListAll возвращает всю историю; id в ORDER BY даёт стабильный порядок
// при равных отметках времени.
func (r *MessageRepository) ListAll(ctx context.Context) ([]chat.Message, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, sender_email, sender_name, text, ts
FROM chat_messages
ORDER BY ts, id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []chat.Message
	for rows.Next() {
		var m chat.Message
		var ts time.Time
		if err := rows.Scan(&m.ID, &m.SenderEmail, &m.SenderName, &m.Text, &ts); err != nil {
			return nil, err
		}
		m.Timestamp = ts.UTC()
		res = append(res, m)
	}
	return res, rows.Err()
}
