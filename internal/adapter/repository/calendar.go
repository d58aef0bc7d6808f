package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hanulsoft/sajunet/internal/entity"
	"github.com/hanulsoft/sajunet/internal/repository"
)

// calendarColumns matches the legacy manseryeok table layout the data file
// ships with.
const calendarColumns = `cd_sy, cd_sm, cd_sd,
       cd_ly, cd_lm, cd_ld, cd_leap_month,
       cd_hyganjee, cd_hmganjee, cd_hdganjee`

type calendarRepository struct {
	db *sql.DB
}

// NewCalendarRepository wraps the read-only manseryeok SQLite database.
func NewCalendarRepository(db *sql.DB) repository.CalendarRepository {
	return &calendarRepository{db: db}
}

func (r *calendarRepository) FindBySolar(ctx context.Context, year, month, day int) (*entity.CalendarDay, error) {
	query := `SELECT ` + calendarColumns + `
		FROM manseryeok
		WHERE cd_sy = ? AND cd_sm = ? AND cd_sd = ?
		LIMIT 1`
	return r.findOne(ctx, query, year, month, day)
}

func (r *calendarRepository) FindByLunar(ctx context.Context, year, month, day int, leapMonth bool) (*entity.CalendarDay, error) {
	query := `SELECT ` + calendarColumns + `
		FROM manseryeok
		WHERE cd_ly = ? AND cd_lm = ? AND cd_ld = ? AND cd_leap_month = ?
		LIMIT 1`
	leap := 0
	if leapMonth {
		leap = 1
	}
	return r.findOne(ctx, query, year, month, day, leap)
}

func (r *calendarRepository) findOne(ctx context.Context, query string, args ...any) (*entity.CalendarDay, error) {
	row := r.db.QueryRowContext(ctx, query, args...)

	var (
		day        entity.CalendarDay
		leap       int
		yearGanji  string
		monthGanji string
		dayGanji   string
	)
	err := row.Scan(
		&day.SolarYear, &day.SolarMonth, &day.SolarDay,
		&day.LunarYear, &day.LunarMonth, &day.LunarDay, &leap,
		&yearGanji, &monthGanji, &dayGanji,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query manseryeok: %w", err)
	}
	day.LeapMonth = leap == 1

	if day.YearPillar, err = entity.ParsePillar(yearGanji); err != nil {
		return nil, fmt.Errorf("year ganji %q: %w", yearGanji, err)
	}
	if day.MonthPillar, err = entity.ParsePillar(monthGanji); err != nil {
		return nil, fmt.Errorf("month ganji %q: %w", monthGanji, err)
	}
	if day.DayPillar, err = entity.ParsePillar(dayGanji); err != nil {
		return nil, fmt.Errorf("day ganji %q: %w", dayGanji, err)
	}
	return &day, nil
}
