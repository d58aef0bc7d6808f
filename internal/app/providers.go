package app

import (
	"database/sql"

	adapterrepo "github.com/hanulsoft/sajunet/internal/adapter/repository"
	"github.com/hanulsoft/sajunet/internal/infrastructure/config"
	"github.com/hanulsoft/sajunet/internal/infrastructure/database"
	"github.com/hanulsoft/sajunet/internal/repository"
	"github.com/hanulsoft/sajunet/internal/usecase"
)

// calendarDB and seasonDB give the two SQLite handles distinct types so Wire
// can route each one to its repository.
type (
	calendarDB *sql.DB
	seasonDB   *sql.DB
)

func provideCalendarDB(conns *database.Connections) calendarDB { return conns.Calendar }

func provideSeasonDB(conns *database.Connections) seasonDB { return conns.Season }

func provideCalendarRepository(db calendarDB) repository.CalendarRepository {
	return adapterrepo.NewCalendarRepository(db)
}

func provideSolarTermRepository(db seasonDB) repository.SolarTermRepository {
	return adapterrepo.NewSolarTermRepository(db)
}

func provideEngineDefaults(cfg *config.Config) usecase.Defaults {
	return usecase.Defaults{
		PivotMinutes:      cfg.Engine.PivotMinutes,
		TZAdjustMinutes:   cfg.Engine.TZAdjustMinutes,
		TermAdjustMinutes: cfg.Engine.TermAdjustMinutes,
		Rounding:          cfg.Engine.RoundingMode(),
	}
}
