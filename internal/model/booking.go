package model

import "time"

// Booking records a guest's reservation of one room for a date range.
// Check-in and check-out are calendar dates kept at UTC midnight; the
// range is half-open, so the check-out day itself is not occupied and a
// new stay may begin the same day another ends.  Reference is the short
// human-readable code handed to the guest; it is nullable only for
// legacy rows awaiting the backfill utility.
//
// Fields:
//  ID        - primary key identifier.
//  UserID    - owning user; only this user may view or cancel the booking.
//  RoomID    - booked room.
//  CheckIn   - first night (inclusive), UTC midnight.
//  CheckOut  - departure day (exclusive), UTC midnight.
//  Guests    - guest count, validated against room capacity at creation.
//  Reference - unique human-readable code (e.g. TC-20250610-9X7Q).
//  CreatedAt - creation timestamp.
type Booking struct {
	ID        uint64    // bookings.id
	UserID    uint64    // bookings.user_id
	RoomID    uint64    // bookings.room_id
	CheckIn   time.Time // bookings.check_in (DATE)
	CheckOut  time.Time // bookings.check_out (DATE)
	Guests    uint8     // bookings.guests
	Reference *string   // bookings.reference (nullable pre-backfill)
	CreatedAt time.Time // bookings.created_at
}

// Overlaps reports whether the half-open ranges [aIn, aOut) and [bIn, bOut)
// share at least one night.  Equal boundaries do not overlap: a checkout on
// day N and a check-in on day N is a valid back-to-back turnover.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// OverlapsRange reports whether the booking occupies any night of
// [checkIn, checkOut).
func (b *Booking) OverlapsRange(checkIn, checkOut time.Time) bool {
	return Overlaps(b.CheckIn, b.CheckOut, checkIn, checkOut)
}

// Nights returns the number of nights between check-in and check-out.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}
