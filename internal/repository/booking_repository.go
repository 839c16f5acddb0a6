package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/hotel-booking/internal/metrics"
	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/reference"
)

// BookingRepo provides the booking writer, reader and canceller.  All
// timestamp fields are stored in UTC; check-in and check-out are DATE
// columns interpreted as UTC midnights.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle so maintenance commands can reuse it.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// reference retry budget: 5 attempts at the standard width, then 3 with
// the widened suffix, then give up loudly.
const (
	narrowRefAttempts = 5
	wideRefAttempts   = 3
)

func isDupKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}

// Create inserts one booking for the user, room and half-open date range.
// The availability re-check and the insert run inside a single
// transaction: the room row is locked, existing bookings for the room are
// re-tested against the overlap predicate, and only then is the row
// written.  A concurrent request for overlapping dates on the same room
// therefore loses with ErrRoomUnavailable instead of double-booking.
// Reference collisions are retried within a bounded budget; exhausting it
// returns ErrReferenceExhausted.
func (r *BookingRepo) Create(ctx context.Context, gen *reference.Generator, userID, roomID uint64, checkIn, checkOut time.Time, guests uint8) (*model.Booking, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Lock the room row; concurrent writers for the same room serialize here.
	var capacity uint8
	err = tx.QueryRowContext(ctx,
		`SELECT capacity FROM rooms WHERE id = ? FOR UPDATE`, roomID).Scan(&capacity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if guests > capacity {
		return nil, ErrCapacityExceeded
	}

	// Re-run the overlap predicate over the room's bookings that could
	// possibly collide.  The SQL filter fetches a superset; the in-process
	// predicate is authoritative for each candidate.
	rows, err := tx.QueryContext(ctx,
		`SELECT check_in, check_out FROM bookings WHERE room_id = ? AND check_out > ? FOR UPDATE`,
		roomID, checkIn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var existing model.Booking
		if err := rows.Scan(&existing.CheckIn, &existing.CheckOut); err != nil {
			return nil, err
		}
		if existing.OverlapsRange(checkIn, checkOut) {
			return nil, ErrRoomUnavailable
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var bookingID int64
	var ref string
	for attempt := 0; ; attempt++ {
		switch {
		case attempt < narrowRefAttempts:
			ref, err = gen.Generate()
		case attempt < narrowRefAttempts+wideRefAttempts:
			ref, err = gen.GenerateWide()
		default:
			return nil, ErrReferenceExhausted
		}
		if err != nil {
			return nil, err
		}
		res, execErr := tx.ExecContext(ctx,
			`INSERT INTO bookings (user_id, room_id, check_in, check_out, guests, reference)
			 VALUES (?,?,?,?,?,?)`,
			userID, roomID, checkIn, checkOut, guests, ref)
		if execErr != nil {
			if isDupKey(execErr) {
				metrics.IncReferenceRetry()
				continue
			}
			return nil, execErr
		}
		bookingID, err = res.LastInsertId()
		if err != nil {
			return nil, err
		}
		break
	}

	// Query back the full row to populate timestamps and defaults
	b := &model.Booking{}
	var refBack sql.NullString
	err = tx.QueryRowContext(ctx,
		`SELECT id, user_id, room_id, check_in, check_out, guests, reference, created_at
		 FROM bookings WHERE id = ?`, bookingID).Scan(
		&b.ID, &b.UserID, &b.RoomID, &b.CheckIn, &b.CheckOut, &b.Guests, &refBack, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	if refBack.Valid {
		rv := refBack.String
		b.Reference = &rv
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return b, nil
}

// BookingDetail is a booking joined with its room's display fields, as
// returned by ListByUser for the guest's account page.
type BookingDetail struct {
	ID         uint64  `json:"id"`
	Reference  *string `json:"reference"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Guests     uint8   `json:"guests"`
	CreatedAt  string  `json:"created_at"`
	RoomID     uint64  `json:"room_id"`
	RoomSlug   string  `json:"room_slug"`
	RoomName   string  `json:"room_name"`
	CoverImage string  `json:"cover_image"`
	PriceCents uint32  `json:"price_cents"`
}

// ListByUser returns all bookings owned by the user joined with room
// display fields, newest first.  When no bookings exist, an empty slice
// is returned.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	const q = `SELECT b.id, b.reference, b.check_in, b.check_out, b.guests, b.created_at,
					  ro.id, ro.slug, ro.name, ro.cover_image, ro.price_cents
			   FROM bookings b
			   JOIN rooms ro ON ro.id = b.room_id
			   WHERE b.user_id = ?
			   ORDER BY b.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]BookingDetail, 0)
	for rows.Next() {
		var d BookingDetail
		var ref sql.NullString
		var checkIn, checkOut, createdAt time.Time
		if err := rows.Scan(
			&d.ID, &ref, &checkIn, &checkOut, &d.Guests, &createdAt,
			&d.RoomID, &d.RoomSlug, &d.RoomName, &d.CoverImage, &d.PriceCents,
		); err != nil {
			return nil, err
		}
		if ref.Valid {
			rv := ref.String
			d.Reference = &rv
		}
		d.CheckIn = checkIn.UTC().Format("2006-01-02")
		d.CheckOut = checkOut.UTC().Format("2006-01-02")
		d.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

// DeleteByIDForUser hard-deletes a booking when it exists AND belongs to
// the user.  A missing row and someone else's row are indistinguishable:
// both return sql.ErrNoRows, so callers cannot probe for other users'
// bookings.
func (r *BookingRepo) DeleteByIDForUser(ctx context.Context, bookingID, userID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM bookings WHERE id = ? AND user_id = ?`, bookingID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListWithoutReference returns ids of legacy bookings that predate the
// reference column.  Used by the backfill command.
func (r *BookingRepo) ListWithoutReference(ctx context.Context) ([]uint64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM bookings WHERE reference IS NULL ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SetReference assigns a reference to one booking.  Returns
// ErrReferenceExists when the candidate is already taken so the caller
// can regenerate and retry.
func (r *BookingRepo) SetReference(ctx context.Context, bookingID uint64, ref string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET reference = ? WHERE id = ?`, ref, bookingID)
	if isDupKey(err) {
		return ErrReferenceExists
	}
	return err
}
