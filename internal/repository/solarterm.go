package repository

import (
	"context"
	"time"

	"github.com/hanulsoft/sajunet/internal/entity"
)

// SolarTermRepository defines read access to the solar-term timetable. The
// queries return raw events (principal and secondary alike); callers filter
// for principal terms. Implementations load a fixed window of years around
// the query instant, never an unbounded scan, and return
// entity.ErrTermNotFound when the window holds no matching event.
type SolarTermRepository interface {
	// NextAfter returns the first term event strictly after at.
	NextAfter(ctx context.Context, at time.Time) (entity.SolarTermPoint, error)
	// PrevBefore returns the last term event strictly before at.
	PrevBefore(ctx context.Context, at time.Time) (entity.SolarTermPoint, error)
	// CurrentAt returns the nearest term event not after at.
	CurrentAt(ctx context.Context, at time.Time) (entity.SolarTermPoint, error)
}
