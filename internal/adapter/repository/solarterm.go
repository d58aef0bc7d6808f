package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/hanulsoft/sajunet/internal/entity"
	"github.com/hanulsoft/sajunet/internal/repository"
)

// windowYears bounds every timetable query to a fixed span around the query
// instant; the search never scans the whole table.
const windowYears = 5

type solarTermRepository struct {
	db *sql.DB
}

// NewSolarTermRepository wraps the read-only season SQLite database.
func NewSolarTermRepository(db *sql.DB) repository.SolarTermRepository {
	return &solarTermRepository{db: db}
}

func (r *solarTermRepository) NextAfter(ctx context.Context, at time.Time) (entity.SolarTermPoint, error) {
	points, err := r.selectYears(ctx, yearRange(at.Year(), at.Year()+windowYears))
	if err != nil {
		return entity.SolarTermPoint{}, err
	}
	for _, p := range points {
		if p.At.After(at) {
			return p, nil
		}
	}
	return entity.SolarTermPoint{}, fmt.Errorf("%w: no term after %s", entity.ErrTermNotFound, at.Format(time.RFC3339))
}

func (r *solarTermRepository) PrevBefore(ctx context.Context, at time.Time) (entity.SolarTermPoint, error) {
	points, err := r.selectYears(ctx, yearRange(at.Year()-windowYears, at.Year()))
	if err != nil {
		return entity.SolarTermPoint{}, err
	}
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].At.Before(at) {
			return points[i], nil
		}
	}
	return entity.SolarTermPoint{}, fmt.Errorf("%w: no term before %s", entity.ErrTermNotFound, at.Format(time.RFC3339))
}

func (r *solarTermRepository) CurrentAt(ctx context.Context, at time.Time) (entity.SolarTermPoint, error) {
	points, err := r.selectYears(ctx, yearRange(at.Year()-1, at.Year()+1))
	if err != nil {
		return entity.SolarTermPoint{}, err
	}
	for i := len(points) - 1; i >= 0; i-- {
		if !points[i].At.After(at) {
			return points[i], nil
		}
	}
	return entity.SolarTermPoint{}, fmt.Errorf("%w: no term at or before %s", entity.ErrTermNotFound, at.Format(time.RFC3339))
}

func yearRange(from, to int) []int {
	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years
}

func (r *solarTermRepository) selectYears(ctx context.Context, years []int) ([]entity.SolarTermPoint, error) {
	placeholders := strings.Repeat("?,", len(years))
	placeholders = placeholders[:len(placeholders)-1]

	query := fmt.Sprintf(`SELECT name, year, month, day, hour, minute
		FROM season
		WHERE year IN (%s)
		ORDER BY year, month, day, hour, minute`, placeholders)

	args := lo.Map(years, func(y int, _ int) any { return y })
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query season: %w", err)
	}
	defer rows.Close()

	var points []entity.SolarTermPoint
	for rows.Next() {
		var (
			name                     string
			year, month, day, hh, mm int
		)
		if err := rows.Scan(&name, &year, &month, &day, &hh, &mm); err != nil {
			return nil, fmt.Errorf("scan season row: %w", err)
		}
		points = append(points, entity.SolarTermPoint{
			Name: name,
			At:   time.Date(year, time.Month(month), day, hh, mm, 0, 0, time.UTC),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate season rows: %w", err)
	}
	return points, nil
}
