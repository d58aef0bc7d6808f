package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hanulsoft/sajunet/internal/entity"
	"github.com/hanulsoft/sajunet/internal/repository"
)

// Defaults carries the configured engine option values used when a request
// leaves an option unset.
type Defaults struct {
	PivotMinutes      int
	TZAdjustMinutes   int
	TermAdjustMinutes int
	Rounding          entity.RoundingMode
}

// ChartUsecase computes Four Pillars charts.
type ChartUsecase interface {
	ComputeChart(ctx context.Context, req entity.ChartRequest) (*entity.Chart, error)
}

type chartUsecase struct {
	calendar repository.CalendarRepository
	terms    repository.SolarTermRepository
	defaults Defaults
}

func NewChartUsecase(calendar repository.CalendarRepository, terms repository.SolarTermRepository, defaults Defaults) ChartUsecase {
	if defaults.Rounding == "" {
		defaults.Rounding = entity.RoundingFloor
	}
	return &chartUsecase{calendar: calendar, terms: terms, defaults: defaults}
}

// resolvedOptions are the effective engine knobs after defaulting.
type resolvedOptions struct {
	pivotMinutes      int
	tzAdjustMinutes   int
	termAdjustMinutes int
	rounding          entity.RoundingMode
}

func (u *chartUsecase) resolveOptions(opts entity.ChartOptions) resolvedOptions {
	r := resolvedOptions{
		pivotMinutes:      u.defaults.PivotMinutes,
		tzAdjustMinutes:   u.defaults.TZAdjustMinutes,
		termAdjustMinutes: u.defaults.TermAdjustMinutes,
		rounding:          u.defaults.Rounding,
	}
	if opts.PivotMinutes != nil {
		r.pivotMinutes = *opts.PivotMinutes
	}
	if opts.TZAdjustMinutes != nil {
		r.tzAdjustMinutes = *opts.TZAdjustMinutes
	}
	if opts.TermAdjustMinutes != nil {
		r.termAdjustMinutes = *opts.TermAdjustMinutes
	}
	if opts.Rounding != "" {
		r.rounding = opts.Rounding
	}
	return r
}

func validateRequest(req entity.ChartRequest) error {
	switch {
	case req.Month < 1 || req.Month > 12:
		return fmt.Errorf("%w: month %d", entity.ErrInvalidRequest, req.Month)
	case req.Day < 1 || req.Day > 31:
		return fmt.Errorf("%w: day %d", entity.ErrInvalidRequest, req.Day)
	case req.Hour < 0 || req.Hour > 23:
		return fmt.Errorf("%w: hour %d", entity.ErrInvalidRequest, req.Hour)
	case req.Minute < 0 || req.Minute > 59:
		return fmt.Errorf("%w: minute %d", entity.ErrInvalidRequest, req.Minute)
	}
	if req.Sex != entity.SexMale && req.Sex != entity.SexFemale {
		return fmt.Errorf("%w: sex %q", entity.ErrInvalidRequest, req.Sex)
	}
	if req.Calendar != entity.CalendarSolar && req.Calendar != entity.CalendarLunar {
		return fmt.Errorf("%w: calendar %q", entity.ErrInvalidRequest, req.Calendar)
	}
	return nil
}

// ComputeChart runs the full pipeline: calendar lookup, hour pillar, pillar
// classifications, branch relations, principal-term anchoring and the three
// fortune cycle families. The computation is a pure function of its inputs;
// identical requests yield identical charts.
func (u *chartUsecase) ComputeChart(ctx context.Context, req entity.ChartRequest) (*entity.Chart, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	opts := u.resolveOptions(req.Options)

	var (
		day *entity.CalendarDay
		err error
	)
	if req.Calendar == entity.CalendarLunar {
		day, err = u.calendar.FindByLunar(ctx, req.Year, req.Month, req.Day, req.LeapMonth)
	} else {
		day, err = u.calendar.FindBySolar(ctx, req.Year, req.Month, req.Day)
	}
	if err != nil {
		return nil, fmt.Errorf("calendar lookup: %w", err)
	}

	// The timezone correction applies once, up front; every time-derived
	// field below reads the corrected instant.
	birth := time.Date(day.SolarYear, time.Month(day.SolarMonth), day.SolarDay,
		req.Hour, req.Minute, 0, 0, time.UTC).
		Add(time.Duration(opts.tzAdjustMinutes) * time.Minute)

	dayStem := day.DayPillar.Stem
	hourBranch := hourBranchIndex(birth.Hour(), birth.Minute(), opts.pivotMinutes)
	hour := hourPillar(dayStem, hourBranch)

	pillars := entity.FourPillars{
		Year:  pillarReading(entity.PositionYear, day.YearPillar, dayStem),
		Month: pillarReading(entity.PositionMonth, day.MonthPillar, dayStem),
		Day:   pillarReading(entity.PositionDay, day.DayPillar, dayStem),
		Hour:  pillarReading(entity.PositionHour, hour, dayStem),
	}

	relations := branchRelations(
		day.YearPillar.Branch, day.MonthPillar.Branch,
		day.DayPillar.Branch, hour.Branch,
	)

	direction := cycleDirection(req.Sex, day.YearPillar.Stem)

	term, err := resolvePrincipalTerm(ctx, u.terms, birth, direction)
	if err != nil {
		return nil, fmt.Errorf("solar term lookup: %w", err)
	}

	age := startAge(birth, term.At, opts.rounding)
	startYear := day.SolarYear + age - 1

	chart := &entity.Chart{
		Calendar:  *day,
		Birth:     birth,
		Pillars:   pillars,
		Relations: relations,
		Direction: direction,
		StartAge:  age,
		AnchorTerm: entity.SolarTermPoint{
			Name: term.Name,
			At:   term.At.Add(time.Duration(opts.termAdjustMinutes) * time.Minute),
		},
		MajorCycles:   majorCycles(day.MonthPillar, dayStem, direction, age, startYear),
		YearlyCycles:  yearlyCycles(dayStem, startYear, 10),
		MonthlyCycles: monthlyCycles(dayStem, day.SolarYear, day.YearPillar.Stem),
	}
	return chart, nil
}
