package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/exhibition-visit-booking/internal/blobstore"
	"github.com/iliyamo/exhibition-visit-booking/internal/booking"
	"github.com/iliyamo/exhibition-visit-booking/internal/config"
	"github.com/iliyamo/exhibition-visit-booking/internal/database"
	"github.com/iliyamo/exhibition-visit-booking/internal/handler"
	"github.com/iliyamo/exhibition-visit-booking/internal/queue"
	"github.com/iliyamo/exhibition-visit-booking/internal/router"
	"github.com/iliyamo/exhibition-visit-booking/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	blobs := newBlobStore(cfg)

	bookings := store.New(blobs)
	bookings.Hydrate(context.Background())

	session := booking.NewAdminSession(cfg.AdminPassword)
	controller := booking.NewController(bookings, session)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterSchedule(e, handler.NewScheduleHandler(bookings))
	router.RegisterBookings(e, handler.NewBookingHandler(controller, cfg.EventsEnabled))
	router.RegisterAdmin(e, handler.NewAdminHandler(cfg, session, bookings), cfg.JWTSecret, session)

	if cfg.EventsEnabled {
		go func() {
			if err := queue.StartBookingConsumer(); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreBackend)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// newBlobStore picks the persistence backend from configuration.  A
// backend that cannot be reached at startup falls back to the file
// store; the booking collection is too small to justify refusing to
// serve.
func newBlobStore(cfg config.Config) blobstore.Store {
	switch cfg.StoreBackend {
	case "redis":
		if client := config.NewRedisClient(); client != nil {
			return blobstore.NewRedis(client)
		}
		log.Printf("redis unreachable, falling back to file store at %s", cfg.StoreFile)
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			mysqlStore, merr := blobstore.NewMySQL(ctx, db)
			if merr == nil {
				return mysqlStore
			}
			err = merr
		}
		log.Printf("mysql unavailable (%v), falling back to file store at %s", err, cfg.StoreFile)
	case "memory":
		return blobstore.NewMemory()
	}
	return blobstore.NewFile(cfg.StoreFile)
}
