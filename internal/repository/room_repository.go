package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// RoomRepo provides read access to the room catalog and the upsert used
// by catalog maintenance.  Rooms carry two ordered child collections,
// features and gallery images, which are replaced wholesale on upsert so
// the catalog stays consistent with the editorial source.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// DB exposes the underlying handle so handlers can begin transactions.
func (r *RoomRepo) DB() *sql.DB { return r.db }

// RoomDetail is the catalog view of a room returned to clients.  Price
// is derived from PriceCents for display convenience.
type RoomDetail struct {
	ID          uint64   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	PriceCents  uint32   `json:"price_cents"`
	Price       float64  `json:"price"`
	Capacity    uint8    `json:"capacity"`
	CoverImage  string   `json:"cover_image"`
	Blurb       *string  `json:"blurb,omitempty"`
	Description *string  `json:"description,omitempty"`
	Features    []string `json:"features"`
	Gallery     []string `json:"gallery"`
}

const roomColumns = `ro.id, ro.slug, ro.name, ro.price_cents, ro.capacity, ro.cover_image, ro.blurb, ro.description`

func scanRoom(scan func(dest ...any) error) (RoomDetail, error) {
	var d RoomDetail
	var blurb, desc sql.NullString
	err := scan(&d.ID, &d.Slug, &d.Name, &d.PriceCents, &d.Capacity, &d.CoverImage, &blurb, &desc)
	if err != nil {
		return d, err
	}
	if blurb.Valid {
		b := blurb.String
		d.Blurb = &b
	}
	if desc.Valid {
		s := desc.String
		d.Description = &s
	}
	d.Price = float64(d.PriceCents) / 100
	d.Features = []string{}
	d.Gallery = []string{}
	return d, nil
}

// List returns the full catalog ordered by nightly price ascending, with
// each room's features and gallery populated.
func (r *RoomRepo) List(ctx context.Context) ([]RoomDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roomColumns+` FROM rooms ro ORDER BY ro.price_cents ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]RoomDetail, 0)
	index := make(map[uint64]int)
	for rows.Next() {
		d, err := scanRoom(rows.Scan)
		if err != nil {
			return nil, err
		}
		index[d.ID] = len(details)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return details, nil
	}
	if err := r.populateChildren(ctx, details, index); err != nil {
		return nil, err
	}
	return details, nil
}

// GetBySlug returns one room with its features and gallery.  When no room
// with the slug exists, ErrRoomNotFound is returned.
func (r *RoomRepo) GetBySlug(ctx context.Context, slug string) (*RoomDetail, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms ro WHERE ro.slug = ? LIMIT 1`, slug)
	d, err := scanRoom(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	details := []RoomDetail{d}
	if err := r.populateChildren(ctx, details, map[uint64]int{d.ID: 0}); err != nil {
		return nil, err
	}
	return &details[0], nil
}

// GetByID returns one room without its child collections.  Used where
// only display fields are needed, e.g. when composing booking events.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*RoomDetail, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms ro WHERE ro.id = ? LIMIT 1`, id)
	d, err := scanRoom(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListAvailable implements the availability filter: rooms whose capacity
// admits the guest count and which have no booking overlapping the
// half-open range [checkIn, checkOut).  The overlap predicate
// `existing.check_in < checkOut AND existing.check_out > checkIn` treats
// a checkout and a check-in on the same day as non-overlapping.  Results
// are ordered by nightly price ascending.  A non-strict date range is an
// error, never a silent empty result.
func (r *RoomRepo) ListAvailable(ctx context.Context, checkIn, checkOut time.Time, guests int) ([]RoomDetail, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roomColumns+`
		 FROM rooms ro
		 WHERE ro.capacity >= ?
		   AND NOT EXISTS (
			   SELECT 1 FROM bookings b
			   WHERE b.room_id = ro.id
				 AND b.check_in < ?
				 AND b.check_out > ?
		   )
		 ORDER BY ro.price_cents ASC`,
		guests, checkOut, checkIn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]RoomDetail, 0)
	index := make(map[uint64]int)
	for rows.Next() {
		d, err := scanRoom(rows.Scan)
		if err != nil {
			return nil, err
		}
		index[d.ID] = len(details)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return details, nil
	}
	if err := r.populateChildren(ctx, details, index); err != nil {
		return nil, err
	}
	return details, nil
}

// populateChildren loads features and gallery images for all rooms in a
// single query each, appending them in editorial sort order.
func (r *RoomRepo) populateChildren(ctx context.Context, details []RoomDetail, index map[uint64]int) error {
	ids := make([]interface{}, 0, len(details))
	placeholders := make([]string, 0, len(details))
	for _, d := range details {
		ids = append(ids, d.ID)
		placeholders = append(placeholders, "?")
	}
	in := strings.Join(placeholders, ",")

	frows, err := r.db.QueryContext(ctx,
		`SELECT room_id, label FROM room_features WHERE room_id IN (`+in+`) ORDER BY room_id, sort`, ids...)
	if err != nil {
		return err
	}
	defer frows.Close()
	for frows.Next() {
		var rid uint64
		var label string
		if err := frows.Scan(&rid, &label); err != nil {
			return err
		}
		if idx, ok := index[rid]; ok {
			details[idx].Features = append(details[idx].Features, label)
		}
	}
	if err := frows.Err(); err != nil {
		return err
	}

	irows, err := r.db.QueryContext(ctx,
		`SELECT room_id, url FROM room_images WHERE room_id IN (`+in+`) ORDER BY room_id, sort`, ids...)
	if err != nil {
		return err
	}
	defer irows.Close()
	for irows.Next() {
		var rid uint64
		var url string
		if err := irows.Scan(&rid, &url); err != nil {
			return err
		}
		if idx, ok := index[rid]; ok {
			details[idx].Gallery = append(details[idx].Gallery, url)
		}
	}
	return irows.Err()
}

// RoomUpsert carries the full editorial state of one room for catalog
// maintenance.  Features and Gallery replace the existing children.
type RoomUpsert struct {
	Slug        string
	Name        string
	PriceCents  uint32
	Capacity    uint8
	CoverImage  string
	Blurb       *string
	Description *string
	Features    []string
	Gallery     []string
}

// Upsert creates or updates a room by slug and replaces its features and
// gallery, all inside one transaction so the room and its children stay
// consistent.  Returns the room id.
func (r *RoomRepo) Upsert(ctx context.Context, in RoomUpsert) (uint64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO rooms (slug, name, price_cents, capacity, cover_image, blurb, description)
		 VALUES (?,?,?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE
		   name=VALUES(name), price_cents=VALUES(price_cents), capacity=VALUES(capacity),
		   cover_image=VALUES(cover_image), blurb=VALUES(blurb), description=VALUES(description)`,
		in.Slug, in.Name, in.PriceCents, in.Capacity, in.CoverImage, in.Blurb, in.Description); err != nil {
		return 0, err
	}

	var roomID uint64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM rooms WHERE slug = ?`, in.Slug).Scan(&roomID); err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM room_features WHERE room_id = ?`, roomID); err != nil {
		return 0, err
	}
	if len(in.Features) > 0 {
		query := `INSERT INTO room_features (room_id, label, sort) VALUES `
		args := make([]interface{}, 0, len(in.Features)*3)
		for i, label := range in.Features {
			if i > 0 {
				query += ","
			}
			query += "(?,?,?)"
			args = append(args, roomID, label, i)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM room_images WHERE room_id = ?`, roomID); err != nil {
		return 0, err
	}
	if len(in.Gallery) > 0 {
		query := `INSERT INTO room_images (room_id, url, sort) VALUES `
		args := make([]interface{}, 0, len(in.Gallery)*3)
		for i, url := range in.Gallery {
			if i > 0 {
				query += ","
			}
			query += "(?,?,?)"
			args = append(args, roomID, url, i)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return roomID, nil
}
