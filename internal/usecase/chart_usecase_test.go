package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/hanulsoft/sajunet/internal/entity"
)

// mockCalendarRepo serves a single fixture row.
type mockCalendarRepo struct {
	day *entity.CalendarDay
}

func (m *mockCalendarRepo) FindBySolar(_ context.Context, year, month, day int) (*entity.CalendarDay, error) {
	if m.day != nil && m.day.SolarYear == year && m.day.SolarMonth == month && m.day.SolarDay == day {
		return m.day, nil
	}
	return nil, entity.ErrDateNotFound
}

func (m *mockCalendarRepo) FindByLunar(_ context.Context, year, month, day int, leap bool) (*entity.CalendarDay, error) {
	if m.day != nil && m.day.LunarYear == year && m.day.LunarMonth == month && m.day.LunarDay == day && m.day.LeapMonth == leap {
		return m.day, nil
	}
	return nil, entity.ErrDateNotFound
}

func mustPillar(t *testing.T, ganji string) entity.Pillar {
	t.Helper()
	p, err := entity.ParsePillar(ganji)
	if err != nil {
		t.Fatalf("parse pillar %q: %v", ganji, err)
	}
	return p
}

// fixtureDay pins the reference row for solar 1990-05-15 (lunar 1990-04-21):
// 庚午 year, 辛巳 month, 丙寅 day.
func fixtureDay(t *testing.T) *entity.CalendarDay {
	t.Helper()
	return &entity.CalendarDay{
		SolarYear: 1990, SolarMonth: 5, SolarDay: 15,
		LunarYear: 1990, LunarMonth: 4, LunarDay: 21,
		YearPillar:  mustPillar(t, "庚午"),
		MonthPillar: mustPillar(t, "辛巳"),
		DayPillar:   mustPillar(t, "丙寅"),
	}
}

func fixtureTerms() *mockTermRepo {
	return &mockTermRepo{points: []entity.SolarTermPoint{
		termAt("입하", 1990, time.May, 6, 3, 35),   // principal
		termAt("소만", 1990, time.May, 21, 10, 0),  // secondary
		termAt("망종", 1990, time.June, 6, 5, 35),  // principal
		termAt("하지", 1990, time.June, 21, 22, 0), // secondary
	}}
}

func defaultEngine(t *testing.T) ChartUsecase {
	t.Helper()
	return NewChartUsecase(
		&mockCalendarRepo{day: fixtureDay(t)},
		fixtureTerms(),
		Defaults{PivotMinutes: 30, TZAdjustMinutes: -30, Rounding: entity.RoundingFloor},
	)
}

func baseRequest() entity.ChartRequest {
	return entity.ChartRequest{
		Year: 1990, Month: 5, Day: 15, Hour: 14, Minute: 30,
		Calendar: entity.CalendarSolar,
		Sex:      entity.SexMale,
	}
}

func TestComputeChart_EndToEnd(t *testing.T) {
	uc := defaultEngine(t)

	chart, err := uc.ComputeChart(context.Background(), baseRequest())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// The -30 minute correction moves 14:30 to 14:00.
	wantBirth := time.Date(1990, time.May, 15, 14, 0, 0, 0, time.UTC)
	if !chart.Birth.Equal(wantBirth) {
		t.Errorf("birth = %v, want %v", chart.Birth, wantBirth)
	}

	if got := chart.Pillars.Hour.Pillar.String(); got != "乙未" {
		t.Errorf("hour pillar = %s, want 乙未", got)
	}

	// 庚 is yang, subject male: forward.
	if chart.Direction != entity.DirectionForward {
		t.Errorf("direction = %v, want forward", chart.Direction)
	}

	// Forward from May 15 skips the secondary 소만 and anchors at 망종
	// (June 6): 22 days / 3, floored, is 7.
	if chart.AnchorTerm.Name != "망종" {
		t.Errorf("anchor term = %q, want 망종", chart.AnchorTerm.Name)
	}
	if chart.StartAge != 7 {
		t.Errorf("start age = %d, want 7", chart.StartAge)
	}

	// Day stem 丙: 庚 is indirect wealth, 辛 direct wealth, 乙 direct
	// resource; the day position is always the fixed self label.
	if chart.Pillars.Year.StemGod != entity.TenGodIndirectWealth {
		t.Errorf("year stem god = %v", chart.Pillars.Year.StemGod)
	}
	if chart.Pillars.Month.StemGod != entity.TenGodDirectWealth {
		t.Errorf("month stem god = %v", chart.Pillars.Month.StemGod)
	}
	if chart.Pillars.Day.StemGod != entity.TenGodSelf {
		t.Errorf("day stem god = %v, want self", chart.Pillars.Day.StemGod)
	}
	if chart.Pillars.Hour.StemGod != entity.TenGodDirectResource {
		t.Errorf("hour stem god = %v", chart.Pillars.Hour.StemGod)
	}

	// Branches 午/巳/寅/未: 午未 combination and 巳寅 harm.
	if len(chart.Relations) != 2 {
		t.Fatalf("relations = %+v, want 2 entries", chart.Relations)
	}

	if len(chart.MajorCycles) != 10 || len(chart.YearlyCycles) != 10 || len(chart.MonthlyCycles) != 12 {
		t.Fatalf("cycle lengths = %d/%d/%d, want 10/10/12",
			len(chart.MajorCycles), len(chart.YearlyCycles), len(chart.MonthlyCycles))
	}
	if got := chart.MajorCycles[0].Pillar.String(); got != "壬午" {
		t.Errorf("first major cycle = %s, want 壬午", got)
	}
	if chart.MajorCycles[0].Age != 7 || chart.MajorCycles[9].Age != 97 {
		t.Errorf("major cycle ages = %d..%d, want 7..97",
			chart.MajorCycles[0].Age, chart.MajorCycles[9].Age)
	}
	if chart.YearlyCycles[0].Year != 1996 {
		t.Errorf("first yearly cycle year = %d, want 1996", chart.YearlyCycles[0].Year)
	}
	if got := chart.MonthlyCycles[0].Pillar.String(); got != "戊寅" {
		t.Errorf("first monthly cycle = %s, want 戊寅", got)
	}
}

func TestComputeChart_Idempotent(t *testing.T) {
	uc := defaultEngine(t)
	req := baseRequest()

	first, err := uc.ComputeChart(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.ComputeChart(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("charts differ between identical calls (-first +second):\n%s", diff)
	}
}

func TestComputeChart_LunarLookup(t *testing.T) {
	uc := defaultEngine(t)

	req := baseRequest()
	req.Calendar = entity.CalendarLunar
	req.Year, req.Month, req.Day = 1990, 4, 21

	chart, err := uc.ComputeChart(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if chart.Calendar.SolarDay != 15 {
		t.Fatalf("lunar lookup resolved solar day %d, want 15", chart.Calendar.SolarDay)
	}
}

func TestComputeChart_FemaleGoesBackward(t *testing.T) {
	uc := defaultEngine(t)

	req := baseRequest()
	req.Sex = entity.SexFemale

	chart, err := uc.ComputeChart(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if chart.Direction != entity.DirectionBackward {
		t.Fatalf("direction = %v, want backward", chart.Direction)
	}
	// Backward anchors at 입하 (May 6): 9 days / 3 = 3.
	if chart.AnchorTerm.Name != "입하" {
		t.Errorf("anchor term = %q, want 입하", chart.AnchorTerm.Name)
	}
	if chart.StartAge != 3 {
		t.Errorf("start age = %d, want 3", chart.StartAge)
	}
	if got := chart.MajorCycles[0].Pillar.String(); got != "庚辰" {
		t.Errorf("first major cycle = %s, want 庚辰", got)
	}
}

func TestComputeChart_OptionOverrides(t *testing.T) {
	uc := defaultEngine(t)

	zero := 0
	req := baseRequest()
	req.Hour, req.Minute = 22, 45
	req.Options = entity.ChartOptions{
		PivotMinutes:    &zero,
		TZAdjustMinutes: &zero,
		Rounding:        entity.RoundingCeil,
	}

	chart, err := uc.ComputeChart(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// With pivot 0 the 22:45 birth stays in the 亥 slot (the configured
	// pivot 30 would already put it in 子).
	if chart.Pillars.Hour.Pillar.Branch != entity.BranchHae {
		t.Errorf("hour branch = %v, want 亥", chart.Pillars.Hour.Pillar.Branch)
	}
	// Ceil turns 22/3 into 8.
	if chart.StartAge != 8 {
		t.Errorf("start age = %d, want 8 with ceil", chart.StartAge)
	}
}

func TestComputeChart_TermAdjustOnlyShiftsEcho(t *testing.T) {
	uc := defaultEngine(t)

	adjust := 90
	req := baseRequest()
	req.Options.TermAdjustMinutes = &adjust

	chart, err := uc.ComputeChart(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	wantAt := time.Date(1990, time.June, 6, 7, 5, 0, 0, time.UTC)
	if !chart.AnchorTerm.At.Equal(wantAt) {
		t.Errorf("anchor term at = %v, want %v", chart.AnchorTerm.At, wantAt)
	}
	// The start age still differences against the raw term instant.
	if chart.StartAge != 7 {
		t.Errorf("start age = %d, want 7", chart.StartAge)
	}
}

func TestComputeChart_DateNotFound(t *testing.T) {
	uc := defaultEngine(t)

	req := baseRequest()
	req.Day = 16

	_, err := uc.ComputeChart(context.Background(), req)
	if !errors.Is(err, entity.ErrDateNotFound) {
		t.Fatalf("err = %v, want ErrDateNotFound", err)
	}
}

func TestComputeChart_TermGap(t *testing.T) {
	uc := NewChartUsecase(
		&mockCalendarRepo{day: fixtureDay(t)},
		&mockTermRepo{points: []entity.SolarTermPoint{
			termAt("소만", 1990, time.May, 21, 10, 0), // secondary, nothing after
		}},
		Defaults{PivotMinutes: 30, TZAdjustMinutes: -30, Rounding: entity.RoundingFloor},
	)

	_, err := uc.ComputeChart(context.Background(), baseRequest())
	if !errors.Is(err, entity.ErrTermNotFound) {
		t.Fatalf("err = %v, want ErrTermNotFound", err)
	}
}

func TestComputeChart_InvalidRequest(t *testing.T) {
	uc := defaultEngine(t)

	cases := []func(*entity.ChartRequest){
		func(r *entity.ChartRequest) { r.Month = 13 },
		func(r *entity.ChartRequest) { r.Day = 0 },
		func(r *entity.ChartRequest) { r.Hour = 24 },
		func(r *entity.ChartRequest) { r.Minute = -1 },
		func(r *entity.ChartRequest) { r.Sex = entity.SexUnspecified },
		func(r *entity.ChartRequest) { r.Calendar = entity.CalendarKind("julian") },
	}
	for i, mutate := range cases {
		req := baseRequest()
		mutate(&req)
		if _, err := uc.ComputeChart(context.Background(), req); !errors.Is(err, entity.ErrInvalidRequest) {
			t.Errorf("case %d: err = %v, want ErrInvalidRequest", i, err)
		}
	}
}
