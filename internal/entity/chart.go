package entity

import (
	"strings"
	"time"
)

// Sex of the chart subject; it gates the major-cycle direction.
type Sex string

const (
	SexUnspecified Sex = ""
	SexMale        Sex = "male"
	SexFemale      Sex = "female"
)

// ParseSex converts an arbitrary string into a Sex value.
func ParseSex(s string) Sex {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return SexMale
	case "female", "f":
		return SexFemale
	default:
		return SexUnspecified
	}
}

// CalendarKind selects which calendar the request date is expressed in.
type CalendarKind string

const (
	CalendarUnspecified CalendarKind = ""
	CalendarSolar       CalendarKind = "solar"
	CalendarLunar       CalendarKind = "lunar"
)

// ParseCalendarKind converts an arbitrary string into a CalendarKind.
func ParseCalendarKind(s string) CalendarKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solar", "":
		return CalendarSolar
	case "lunar":
		return CalendarLunar
	default:
		return CalendarUnspecified
	}
}

// CycleDirection is the traversal direction of the major fortune cycles.
type CycleDirection string

const (
	DirectionForward  CycleDirection = "forward"
	DirectionBackward CycleDirection = "backward"
)

// RoundingMode selects how the start-age quotient is rounded.
type RoundingMode string

const (
	RoundingFloor RoundingMode = "floor"
	RoundingCeil  RoundingMode = "ceil"
	RoundingRound RoundingMode = "round"
)

// ParseRoundingMode converts an arbitrary string into a RoundingMode,
// defaulting to floor.
func ParseRoundingMode(s string) RoundingMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ceil":
		return RoundingCeil
	case "round":
		return RoundingRound
	default:
		return RoundingFloor
	}
}

// CalendarDay is one row of the calendar lookup: a solar date, its lunar
// counterpart and the year/month/day pillars of that day.
type CalendarDay struct {
	SolarYear  int  `json:"solar_year"`
	SolarMonth int  `json:"solar_month"`
	SolarDay   int  `json:"solar_day"`
	LunarYear  int  `json:"lunar_year"`
	LunarMonth int  `json:"lunar_month"`
	LunarDay   int  `json:"lunar_day"`
	LeapMonth  bool `json:"leap_month"`

	YearPillar  Pillar `json:"year_pillar"`
	MonthPillar Pillar `json:"month_pillar"`
	DayPillar   Pillar `json:"day_pillar"`
}

// SolarTermPoint is one solar-term event.
type SolarTermPoint struct {
	Name string    `json:"name"`
	At   time.Time `json:"at"`
}

// principalTerms holds the names of the 12 principal terms (of the 24 in the
// calendar) that anchor major-cycle age computation, as stored in the
// season table.
var principalTerms = map[string]struct{}{
	"입춘": {}, "경칩": {}, "청명": {},
	"입하": {}, "망종": {}, "소서": {},
	"입추": {}, "백로": {}, "한로": {},
	"입동": {}, "대설": {}, "소한": {},
}

// Principal reports whether the term is one of the 12 principal terms.
func (p SolarTermPoint) Principal() bool {
	_, ok := principalTerms[p.Name]
	return ok
}

// ChartOptions carries the per-request engine knobs. Nil pointer fields fall
// back to the configured defaults.
type ChartOptions struct {
	// PivotMinutes shifts the hour-branch slot boundary back from 23:00.
	PivotMinutes *int `json:"pivot_minutes,omitempty"`
	// TZAdjustMinutes is the fixed timezone/longitude correction applied
	// to the birth instant before any time-derived computation.
	TZAdjustMinutes *int `json:"tz_adjust_minutes,omitempty"`
	// TermAdjustMinutes shifts the reported anchor-term timestamp; it
	// never affects the start-age differencing.
	TermAdjustMinutes *int `json:"term_adjust_minutes,omitempty"`
	// Rounding selects the start-age rounding mode.
	Rounding RoundingMode `json:"rounding,omitempty"`
}

// ChartRequest is the input of the chart computation.
type ChartRequest struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`

	Calendar  CalendarKind `json:"calendar"`
	LeapMonth bool         `json:"leap_month"`
	Sex       Sex          `json:"sex"`

	Options ChartOptions `json:"options"`
}

// PillarReading is one chart position with its derived classifications.
type PillarReading struct {
	Position    PillarPosition `json:"position"`
	Pillar      Pillar         `json:"pillar"`
	StemGod     TenGod         `json:"stem_god"`
	BranchGod   TenGod         `json:"branch_god"`
	Stage       TwelveStage    `json:"stage"`
	HiddenStems []Stem         `json:"hidden_stems"`
}

// FourPillars groups the four chart positions.
type FourPillars struct {
	Year  PillarReading `json:"year"`
	Month PillarReading `json:"month"`
	Day   PillarReading `json:"day"`
	Hour  PillarReading `json:"hour"`
}

// FortuneCycleEntry is one step of a fortune timeline. Major-cycle entries
// carry Age and Year; yearly entries carry Year; monthly entries carry Month.
type FortuneCycleEntry struct {
	Ordinal int    `json:"ordinal"`
	Age     int    `json:"age,omitempty"`
	Year    int    `json:"year,omitempty"`
	Month   int    `json:"month,omitempty"`
	Pillar  Pillar `json:"pillar"`
	TenGod  TenGod `json:"ten_god"`
}

// Chart is the complete computation result. It is created fresh per request
// and never mutated afterwards.
type Chart struct {
	Calendar CalendarDay `json:"calendar"`
	// Birth is the timezone-corrected birth instant all time-derived
	// fields were computed from.
	Birth time.Time `json:"birth"`

	Pillars   FourPillars      `json:"pillars"`
	Relations []BranchRelation `json:"relations"`

	Direction  CycleDirection `json:"direction"`
	StartAge   int            `json:"start_age"`
	AnchorTerm SolarTermPoint `json:"anchor_term"`

	MajorCycles   []FortuneCycleEntry `json:"major_cycles"`
	YearlyCycles  []FortuneCycleEntry `json:"yearly_cycles"`
	MonthlyCycles []FortuneCycleEntry `json:"monthly_cycles"`
}
