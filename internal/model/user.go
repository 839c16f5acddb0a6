package model

import "time"

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. The json tags are omitted here because these structs
// are primarily used internally by the repository layer; handlers
// may define separate response types with appropriate JSON tags.
// PasswordHash is nullable: accounts created through an external
// identity provider carry no local credential.
//
// Fields:
//  ID           - primary key identifier of the user.
//  Email        - unique email address.
//  Name         - optional display name.
//  PasswordHash - bcrypt hashed password (null for external identities).
//  Image        - optional avatar URL from a linked external identity.
//  Role         - name of the role (GUEST or ADMIN).
//  CreatedAt    - timestamp of creation.
//  UpdatedAt    - timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	Name         *string   // users.name (nullable)
	PasswordHash *string   // users.password_hash (nullable)
	Image        *string   // users.image (nullable)
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each
// refresh token belongs to a user and contains metadata for expiry
// and revocation.  The plain token is not stored; only its
// SHA‑256 hash.
//
// Fields:
//  ID        - primary key identifier.
//  UserID    - owner of the token.
//  TokenHash - SHA‑256 hex digest of the token value.
//  ExpiresAt - expiration timestamp of the token.
//  RevokedAt - when the token was revoked (null if still active).
//  CreatedAt - timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}

// PasswordResetToken models a row in `password_reset_tokens`.  The raw
// token is emailed to the user; only its SHA‑256 hash is stored.  A
// token is single-use and expires after a configurable window.
type PasswordResetToken struct {
	ID        uint64    // password_reset_tokens.id
	Email     string    // password_reset_tokens.email
	TokenHash string    // password_reset_tokens.token_hash
	ExpiresAt time.Time // password_reset_tokens.expires_at
	CreatedAt time.Time // password_reset_tokens.created_at
}

// NewsletterSubscriber models a row in `newsletter_subscribers`.  Email
// is unique; UserID is filled only when the subscriber was signed in
// with the same address at subscription time.
type NewsletterSubscriber struct {
	ID        uint64    // newsletter_subscribers.id
	Email     string    // newsletter_subscribers.email
	UserID    *uint64   // newsletter_subscribers.user_id (nullable)
	CreatedAt time.Time // newsletter_subscribers.created_at
}
