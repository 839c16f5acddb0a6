// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking is successfully written.
// It carries enough information for downstream consumers to log and send
// the confirmation email without querying the primary database.
type BookingCreatedEvent struct {
	BookingID  uint64 `json:"booking_id"`
	Reference  string `json:"reference"`
	UserID     uint64 `json:"user_id"`
	UserEmail  string `json:"user_email"`
	RoomID     uint64 `json:"room_id"`
	RoomSlug   string `json:"room_slug"`
	RoomName   string `json:"room_name"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Guests     uint8  `json:"guests"`
	TotalCents uint32 `json:"total_cents"`
	CreatedAt  string `json:"created_at"`
}
