package repository

import (
	"context"

	"github.com/hanulsoft/sajunet/internal/entity"
)

// CalendarRepository defines read access to the perpetual-calendar rows.
// Both lookups return entity.ErrDateNotFound when no row matches.
type CalendarRepository interface {
	FindBySolar(ctx context.Context, year, month, day int) (*entity.CalendarDay, error)
	FindByLunar(ctx context.Context, year, month, day int, leapMonth bool) (*entity.CalendarDay, error)
}
