package repository

import (
	"context"
	"database/sql"
	"time"
)

// TokenRepo persists guest session refresh tokens.  Only the SHA-256
// hash of a token is stored, mirroring password_reset_tokens: a leaked
// dump cannot be replayed against live sessions.  Tokens are revoked in
// place rather than deleted so a stolen-token investigation can see
// when a session ended.
type TokenRepo struct {
	db *sql.DB
}

// NewTokenRepo returns a new TokenRepo bound to the given database.
func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{db: db} }

// StoreRefresh records a refresh token hash with its expiry.  One user
// may hold several live sessions (web, phone), so rows accumulate until
// revoked or expired.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES (?,?,?)`,
		userID, tokenHash, exp)
	return err
}

// ValidateRefresh resolves a token hash to its owning user.  Revoked and
// expired rows are filtered in SQL, so every failure mode surfaces as
// sql.ErrNoRows and callers cannot tell a revoked session from a
// nonexistent one.  Expiry is compared in UTC like every other date in
// the schema.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error) {
	var userID uint64
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id FROM refresh_tokens
		 WHERE token_hash = ? AND revoked_at IS NULL AND expires_at > UTC_TIMESTAMP()
		 LIMIT 1`,
		tokenHash).Scan(&userID)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// RevokeByHash ends the single session identified by the token hash.
// Already-revoked rows are left untouched so the original revocation
// time survives.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE refresh_tokens SET revoked_at = UTC_TIMESTAMP()
		 WHERE token_hash = ? AND revoked_at IS NULL`,
		tokenHash)
	return err
}

// RevokeAllForUser ends every live session for the user.  Used by
// logout with a Bearer token and after a password reset.
func (r *TokenRepo) RevokeAllForUser(ctx context.Context, userID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE refresh_tokens SET revoked_at = UTC_TIMESTAMP()
		 WHERE user_id = ? AND revoked_at IS NULL`,
		userID)
	return err
}
