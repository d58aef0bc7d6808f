package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite driver for the two data files

	"github.com/hanulsoft/sajunet/internal/infrastructure/config"
)

// Connections bundles the two read-only SQLite handles the engine's lookup
// repositories run on.
type Connections struct {
	Calendar *sql.DB
	Season   *sql.DB
}

// NewConnections opens the calendar and season databases read-only and
// verifies both respond.
func NewConnections(cfg *config.Config) (*Connections, func(), error) {
	calendar, err := open(cfg.Database.CalendarPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open calendar db: %w", err)
	}
	season, err := open(cfg.Database.SeasonPath)
	if err != nil {
		calendar.Close()
		return nil, nil, fmt.Errorf("open season db: %w", err)
	}

	conns := &Connections{Calendar: calendar, Season: season}
	cleanup := func() {
		calendar.Close()
		season.Close()
	}
	return conns, cleanup, nil
}

func open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	return db, nil
}
