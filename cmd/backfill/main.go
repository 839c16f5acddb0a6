// Command backfill assigns booking references to rows that predate the
// reference column.  Safe to re-run: rows that already carry a reference
// are skipped, and a collision with an existing reference regenerates
// within a bounded budget instead of looping forever.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/iliyamo/hotel-booking/internal/config"
	"github.com/iliyamo/hotel-booking/internal/database"
	"github.com/iliyamo/hotel-booking/internal/reference"
	"github.com/iliyamo/hotel-booking/internal/repository"
)

const (
	narrowAttempts = 5
	wideAttempts   = 3
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	bookings := repository.NewBookingRepo(db)
	gen := reference.New()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ids, err := bookings.ListWithoutReference(ctx)
	if err != nil {
		log.Fatalf("list bookings without reference: %v", err)
	}
	if len(ids) == 0 {
		log.Println("backfill: nothing to do")
		return
	}
	log.Printf("backfill: %d bookings to update", len(ids))

	var done, failed int
	for _, id := range ids {
		if err := assign(ctx, bookings, gen, id); err != nil {
			log.Printf("backfill: booking %d failed: %v", id, err)
			failed++
			continue
		}
		done++
	}
	log.Printf("backfill: finished, updated=%d failed=%d", done, failed)
}

// assign generates references until one sticks, widening the suffix after
// repeated collisions the same way the booking writer does.
func assign(ctx context.Context, repo *repository.BookingRepo, gen *reference.Generator, id uint64) error {
	for attempt := 0; attempt < narrowAttempts+wideAttempts; attempt++ {
		var (
			ref string
			err error
		)
		if attempt < narrowAttempts {
			ref, err = gen.Generate()
		} else {
			ref, err = gen.GenerateWide()
		}
		if err != nil {
			return err
		}
		err = repo.SetReference(ctx, id, ref)
		if err == repository.ErrReferenceExists {
			continue
		}
		if err != nil {
			return err
		}
		log.Printf("backfill: booking %d -> %s", id, ref)
		return nil
	}
	return repository.ErrReferenceExhausted
}
