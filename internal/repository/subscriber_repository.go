package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Subscriber mirrors the 'newsletter_subscribers' table.
type Subscriber struct {
	ID        uint64
	Email     string
	UserID    sql.NullInt64
	CreatedAt time.Time
}

// SubscriberRepo manages newsletter signups. Email is the dedupe key; a
// user link is attached only when the signed-in session matches the
// submitted address.
type SubscriberRepo struct{ DB *sql.DB }

func NewSubscriberRepo(db *sql.DB) *SubscriberRepo { return &SubscriberRepo{DB: db} }

// GetByEmail fetches a subscriber by normalized email.
func (r *SubscriberRepo) GetByEmail(ctx context.Context, email string) (Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var s Subscriber
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,user_id,created_at FROM newsletter_subscribers WHERE email=? LIMIT 1",
		email).Scan(&s.ID, &s.Email, &s.UserID, &s.CreatedAt)
	return s, err
}

// Create inserts a subscriber row, optionally linked to a user.
func (r *SubscriberRepo) Create(ctx context.Context, email string, userID *uint64) error {
	email = strings.ToLower(strings.TrimSpace(email))
	var uid any
	if userID != nil {
		uid = *userID
	}
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO newsletter_subscribers (email, user_id) VALUES (?,?)",
		email, uid)
	if isDupKey(err) {
		return ErrEmailExists
	}
	return err
}

// LinkUser attaches a user to an existing unlinked subscriber row.
func (r *SubscriberRepo) LinkUser(ctx context.Context, email string, userID uint64) error {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := r.DB.ExecContext(ctx,
		"UPDATE newsletter_subscribers SET user_id=? WHERE email=? AND user_id IS NULL",
		userID, email)
	return err
}
