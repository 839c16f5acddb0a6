package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-booking/internal/reference"
)

// zeroReader yields an endless stream of zero bytes, so every generated
// suffix is "AAAA" (or "AAAAAAAA" for the wide form) and collisions can
// be forced at will.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func fixedGen() *reference.Generator {
	return &reference.Generator{
		Rand: zeroReader{},
		Now:  func() time.Time { return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) },
	}
}

var dupKeyErr = errors.New("Error 1062 (23000): Duplicate entry 'TC-20250610-AAAA' for key 'bookings.reference'")

const (
	narrowRef = "TC-20250610-AAAA"
	wideRef   = "TC-20250610-AAAAAAAA"
)

func expectAvailabilityChecks(mock sqlmock.Sqlmock, roomID uint64, checkIn time.Time, capacity uint8) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT capacity FROM rooms WHERE id = ? FOR UPDATE`)).
		WithArgs(roomID).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(capacity))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT check_in, check_out FROM bookings WHERE room_id = ? AND check_out > ? FOR UPDATE`)).
		WithArgs(roomID, checkIn).
		WillReturnRows(sqlmock.NewRows([]string{"check_in", "check_out"}))
}

func TestCreateWidensSuffixThenGivesUp(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var (
		userID   uint64 = 7
		roomID   uint64 = 3
		checkIn         = time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
		checkOut        = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
		guests   uint8  = 2
	)

	mock.ExpectBegin()
	expectAvailabilityChecks(mock, roomID, checkIn, 4)

	insertSQL := regexp.QuoteMeta(`INSERT INTO bookings (user_id, room_id, check_in, check_out, guests, reference)`)
	// Five collisions at the standard width, then three at the widened
	// width, then the writer gives up.
	for i := 0; i < 5; i++ {
		mock.ExpectExec(insertSQL).
			WithArgs(userID, roomID, checkIn, checkOut, guests, narrowRef).
			WillReturnError(dupKeyErr)
	}
	for i := 0; i < 3; i++ {
		mock.ExpectExec(insertSQL).
			WithArgs(userID, roomID, checkIn, checkOut, guests, wideRef).
			WillReturnError(dupKeyErr)
	}
	mock.ExpectRollback()

	repo := NewBookingRepo(db)
	b, err := repo.Create(context.Background(), fixedGen(), userID, roomID, checkIn, checkOut, guests)

	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrReferenceExhausted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsOverlappingStay(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	checkIn := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT capacity FROM rooms WHERE id = ? FOR UPDATE`)).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(4))
	// An existing stay occupying the night of the 13th.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT check_in, check_out FROM bookings WHERE room_id = ? AND check_out > ? FOR UPDATE`)).
		WithArgs(uint64(3), checkIn).
		WillReturnRows(sqlmock.NewRows([]string{"check_in", "check_out"}).
			AddRow(time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	mock.ExpectRollback()

	repo := NewBookingRepo(db)
	b, err := repo.Create(context.Background(), fixedGen(), 7, 3, checkIn, checkOut, 2)

	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsOversizedParty(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT capacity FROM rooms WHERE id = ? FOR UPDATE`)).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(2))
	mock.ExpectRollback()

	repo := NewBookingRepo(db)
	_, err = repo.Create(context.Background(), fixedGen(), 7, 3,
		time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), 5)

	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByIDForUser(t *testing.T) {
	t.Parallel()

	deleteSQL := regexp.QuoteMeta(`DELETE FROM bookings WHERE id = ? AND user_id = ?`)

	t.Run("owned booking is removed", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(deleteSQL).
			WithArgs(uint64(12), uint64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewBookingRepo(db)
		assert.NoError(t, repo.DeleteByIDForUser(context.Background(), 12, 7))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing and foreign bookings are indistinguishable", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		// Booking 12 belongs to user 9; user 7's delete matches nothing,
		// exactly like a booking that never existed.
		mock.ExpectExec(deleteSQL).
			WithArgs(uint64(12), uint64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewBookingRepo(db)
		err = repo.DeleteByIDForUser(context.Background(), 12, 7)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSetReferenceReportsCollision(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE bookings SET reference = ? WHERE id = ?`)).
		WithArgs(narrowRef, uint64(5)).
		WillReturnError(dupKeyErr)

	repo := NewBookingRepo(db)
	err = repo.SetReference(context.Background(), 5, narrowRef)

	assert.ErrorIs(t, err, ErrReferenceExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
