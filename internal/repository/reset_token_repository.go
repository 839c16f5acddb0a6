package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// ResetTokenRepo persists password reset tokens. Only the SHA-256 hash of
// a token is stored; the raw value travels to the user by email. Tokens
// are single-use: Consume validates and deletes in one transaction.
type ResetTokenRepo struct{ DB *sql.DB }

func NewResetTokenRepo(db *sql.DB) *ResetTokenRepo { return &ResetTokenRepo{DB: db} }

// Replace invalidates any prior tokens for the email and stores a fresh
// hash with its expiry. Issuing a new reset link always supersedes the
// previous one.
func (r *ResetTokenRepo) Replace(ctx context.Context, email, tokenHash string, exp time.Time) error {
	email = strings.ToLower(strings.TrimSpace(email))
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM password_reset_tokens WHERE email=?", email); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO password_reset_tokens (email, token_hash, expires_at) VALUES (?,?,?)",
		email, tokenHash, exp); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Consume validates that a token hash exists for the email and has not
// expired, then deletes it so it cannot be replayed. Returns
// sql.ErrNoRows for unknown, mismatched or expired tokens; the caller
// must not distinguish these cases to the client.
func (r *ResetTokenRepo) Consume(ctx context.Context, email, tokenHash string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	var storedEmail string
	var expiresAt time.Time
	err = tx.QueryRowContext(ctx,
		"SELECT email, expires_at FROM password_reset_tokens WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&storedEmail, &expiresAt)
	if err != nil {
		return err
	}
	if storedEmail != email || time.Now().UTC().After(expiresAt) {
		return sql.ErrNoRows
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM password_reset_tokens WHERE token_hash=?", tokenHash); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
