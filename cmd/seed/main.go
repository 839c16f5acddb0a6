// Command seed loads the launch catalog: three suites with features and
// galleries.  Upserts by slug, so re-running refreshes editorial content
// without touching bookings.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/iliyamo/hotel-booking/internal/config"
	"github.com/iliyamo/hotel-booking/internal/database"
	"github.com/iliyamo/hotel-booking/internal/repository"
)

func strptr(s string) *string { return &s }

func catalog() []repository.RoomUpsert {
	return []repository.RoomUpsert{
		{
			Slug:       "junior-suite",
			Name:       "Junior Suite",
			PriceCents: 25000,
			Capacity:   2,
			CoverImage: "/images/rooms/junior-suite/cover.jpg",
			Blurb:      strptr("A calm corner suite with garden views and a rainfall shower."),
			Description: strptr("The Junior Suite pairs a king bed with a small sitting nook " +
				"overlooking the courtyard garden. Marble bathroom with rainfall shower, " +
				"espresso machine and evening turndown."),
			Features: []string{
				"King bed",
				"Garden view",
				"Rainfall shower",
				"Espresso machine",
			},
			Gallery: []string{
				"/images/rooms/junior-suite/01.jpg",
				"/images/rooms/junior-suite/02.jpg",
				"/images/rooms/junior-suite/03.jpg",
			},
		},
		{
			Slug:       "executive-suite",
			Name:       "Executive Suite",
			PriceCents: 33000,
			Capacity:   3,
			CoverImage: "/images/rooms/executive-suite/cover.jpg",
			Blurb:      strptr("A generous suite with a separate lounge and skyline views."),
			Description: strptr("The Executive Suite offers a dedicated lounge, work desk and " +
				"floor-to-ceiling windows over the city. Sleeps three with a fold-out " +
				"daybed, soaking tub and complimentary minibar."),
			Features: []string{
				"Separate lounge",
				"Skyline view",
				"Soaking tub",
				"Work desk",
				"Complimentary minibar",
			},
			Gallery: []string{
				"/images/rooms/executive-suite/01.jpg",
				"/images/rooms/executive-suite/02.jpg",
				"/images/rooms/executive-suite/03.jpg",
			},
		},
		{
			Slug:       "royal-suite",
			Name:       "Royal Suite",
			PriceCents: 48000,
			Capacity:   4,
			CoverImage: "/images/rooms/royal-suite/cover.jpg",
			Blurb:      strptr("The signature suite: two bedrooms, a dining room and butler service."),
			Description: strptr("The Royal Suite spans the top floor with two bedrooms, a " +
				"private dining room for six and a wraparound terrace. Butler service, " +
				"heated bathroom floors and a dedicated lift."),
			Features: []string{
				"Two bedrooms",
				"Private dining room",
				"Wraparound terrace",
				"Butler service",
				"Dedicated lift",
			},
			Gallery: []string{
				"/images/rooms/royal-suite/01.jpg",
				"/images/rooms/royal-suite/02.jpg",
				"/images/rooms/royal-suite/03.jpg",
				"/images/rooms/royal-suite/04.jpg",
			},
		},
	}
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rooms := repository.NewRoomRepo(db)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for _, room := range catalog() {
		id, err := rooms.Upsert(ctx, room)
		if err != nil {
			log.Fatalf("seed: upsert %s: %v", room.Slug, err)
		}
		log.Printf("seed: %s -> id %d", room.Slug, id)
	}
	log.Println("seed: done")
}
