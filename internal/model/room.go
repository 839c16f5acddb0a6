package model

import "time"

// Room represents a bookable room type as stored in the `rooms` table.
// Each room is identified internally by its numeric ID and externally by
// its slug, which is globally unique and appears in URLs.  Capacity is a
// binary admission filter: a room either fits the requested guest count
// or it does not.  There is no multi-unit inventory per room type.
//
// Fields:
//  ID          - primary key identifier.
//  Slug        - unique human‑readable key (e.g. "royal-suite").
//  Name        - display name shown to guests.
//  PriceCents  - nightly price in euro cents.
//  Capacity    - maximum guest count the room accommodates.
//  CoverImage  - path of the cover image.
//  Blurb       - short teaser for the catalog page (nullable).
//  Description - long copy for the detail page (nullable).
type Room struct {
	ID          uint64    // rooms.id
	Slug        string    // rooms.slug
	Name        string    // rooms.name
	PriceCents  uint32    // rooms.price_cents
	Capacity    uint8     // rooms.capacity
	CoverImage  string    // rooms.cover_image
	Blurb       *string   // rooms.blurb (nullable)
	Description *string   // rooms.description (nullable)
	CreatedAt   time.Time // rooms.created_at
	UpdatedAt   time.Time // rooms.updated_at
}

// Feature is one bullet in a room's ordered feature list
// (`room_features` table).  Sort preserves the editorial order.
type Feature struct {
	ID     uint64 // room_features.id
	RoomID uint64 // room_features.room_id
	Label  string // room_features.label
	Sort   uint16 // room_features.sort
}

// RoomImage is one entry in a room's ordered gallery
// (`room_images` table).
type RoomImage struct {
	ID     uint64 // room_images.id
	RoomID uint64 // room_images.room_id
	URL    string // room_images.url
	Sort   uint16 // room_images.sort
}
