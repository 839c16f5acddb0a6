package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-booking/internal/config"     // Internal config loader
	"github.com/iliyamo/hotel-booking/internal/database"   // MySQL pool
	"github.com/iliyamo/hotel-booking/internal/handler"    // HTTP handlers
	"github.com/iliyamo/hotel-booking/internal/mailer"     // transactional email
	"github.com/iliyamo/hotel-booking/internal/metrics"    // Prometheus collectors
	"github.com/iliyamo/hotel-booking/internal/middleware" // rate limit + response cache
	"github.com/iliyamo/hotel-booking/internal/queue"      // booking event consumer
	"github.com/iliyamo/hotel-booking/internal/reference"  // booking reference generator
	"github.com/iliyamo/hotel-booking/internal/repository" // DB repositories
	"github.com/iliyamo/hotel-booking/internal/router"     // Internal router setup
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	metrics.Register()

	// Repositories
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	resets := repository.NewResetTokenRepo(db)
	rooms := repository.NewRoomRepo(db)
	bookings := repository.NewBookingRepo(db)
	subscribers := repository.NewSubscriberRepo(db)

	// Shared services
	mail := mailer.NewLogSender(cfg.EmailFromName, cfg.EmailFromAddr)
	refs := reference.New()

	// Handlers
	authH := handler.NewAuthHandler(cfg, users, tokens)
	passH := handler.NewPasswordHandler(cfg, users, resets, tokens, mail)
	roomH := handler.NewRoomHandler(rooms)
	bookH := handler.NewBookingHandler(bookings, rooms, users, refs)
	subH := handler.NewSubscribeHandler(cfg, users, subscribers, mail)
	adminH := handler.NewAdminRoomHandler(rooms)

	e := echo.New() // Create Echo instance

	// Redis-backed rate limiting applies to every route; the response
	// cache is attached only to the public catalog GETs below.  Both fail
	// open when Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb != nil {
		e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	}

	var publicCache []echo.MiddlewareFunc
	if rdb != nil {
		publicCache = append(publicCache, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, passH, cfg.JWTSecret)
	router.RegisterPublic(e, roomH, subH, publicCache...)
	router.RegisterGuest(e, bookH, cfg.JWTSecret)
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)

	// Background consumer: writes logs/booking.log and sends confirmation
	// email for every booking.created message.
	go func() {
		if err := queue.StartBookingConsumer(mail); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
