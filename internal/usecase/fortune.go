package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hanulsoft/sajunet/internal/entity"
	"github.com/hanulsoft/sajunet/internal/repository"
)

// maxTermSkips bounds the principal-term search. Real calendar data holds a
// principal term within two raw events of any instant; exceeding the cap
// means the term table has a gap.
const maxTermSkips = 4

const majorCycleCount = 10

// cycleDirection derives the major-cycle traversal direction from the
// subject's sex and the year stem's polarity.
func cycleDirection(sex entity.Sex, yearStem entity.Stem) entity.CycleDirection {
	if (sex == entity.SexMale && yearStem.Yang()) || (sex == entity.SexFemale && !yearStem.Yang()) {
		return entity.DirectionForward
	}
	return entity.DirectionBackward
}

// resolvePrincipalTerm finds the principal term anchoring the start age:
// the first one strictly after the birth instant when traversing forward,
// the last one strictly before it when traversing backward. Secondary terms
// returned by the raw lookup are skipped by re-querying from the event just
// seen, at most maxTermSkips times.
func resolvePrincipalTerm(ctx context.Context, terms repository.SolarTermRepository, birth time.Time, direction entity.CycleDirection) (entity.SolarTermPoint, error) {
	lookup := terms.NextAfter
	if direction == entity.DirectionBackward {
		lookup = terms.PrevBefore
	}

	at := birth
	for i := 0; i <= maxTermSkips; i++ {
		point, err := lookup(ctx, at)
		if err != nil {
			return entity.SolarTermPoint{}, err
		}
		if point.Principal() {
			return point, nil
		}
		at = point.At
	}
	return entity.SolarTermPoint{}, fmt.Errorf("%w: no principal term within %d events of %s", entity.ErrTermNotFound, maxTermSkips, birth.Format(time.RFC3339))
}

// startAge computes the major-cycle start age from the day-granularity
// distance between birth and the anchoring term: both instants truncate to
// midnight before differencing, three days of offset count as one year, and
// the result never drops below one.
func startAge(birth, term time.Time, rounding entity.RoundingMode) int {
	b := truncateToDay(birth)
	t := truncateToDay(term)

	days := math.Abs(t.Sub(b).Hours() / 24)
	raw := days / 3

	var age int
	switch rounding {
	case entity.RoundingCeil:
		age = int(math.Ceil(raw))
	case entity.RoundingRound:
		age = int(math.Round(raw))
	default:
		age = int(math.Floor(raw))
	}
	if age < 1 {
		age = 1
	}
	return age
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// majorCycles steps the month pillar forward or backward by 1..10, ten
// years per step.
func majorCycles(monthPillar entity.Pillar, dayStem entity.Stem, direction entity.CycleDirection, firstAge, startYear int) []entity.FortuneCycleEntry {
	sign := 1
	if direction == entity.DirectionBackward {
		sign = -1
	}

	entries := make([]entity.FortuneCycleEntry, 0, majorCycleCount)
	for i := 1; i <= majorCycleCount; i++ {
		pillar := entity.Pillar{
			Stem:   monthPillar.Stem.Step(sign * i),
			Branch: monthPillar.Branch.Step(sign * i),
		}
		entries = append(entries, entity.FortuneCycleEntry{
			Ordinal: i,
			Age:     firstAge + (i-1)*10,
			Year:    startYear + (i-1)*10,
			Pillar:  pillar,
			TenGod:  tenGod(dayStem, pillar.Stem),
		})
	}
	return entries
}

// yearlyCycles derives count year pillars from the epoch-anchored formula
// stem=(year+6) mod 10, branch=(year+8) mod 12, independent of the
// subject's own pillars.
func yearlyCycles(dayStem entity.Stem, startYear, count int) []entity.FortuneCycleEntry {
	entries := make([]entity.FortuneCycleEntry, 0, count)
	for i := 0; i < count; i++ {
		year := startYear + i
		pillar := entity.Pillar{
			Stem:   entity.Stem((year + 6) % 10),
			Branch: entity.Branch((year + 8) % 12),
		}
		entries = append(entries, entity.FortuneCycleEntry{
			Ordinal: i + 1,
			Year:    year,
			Pillar:  pillar,
			TenGod:  tenGod(dayStem, pillar.Stem),
		})
	}
	return entries
}

// monthStemStart maps a year stem to the stem of that year's first month
// (the tiger month).
var monthStemStart = map[entity.Stem]entity.Stem{
	entity.StemGap:    entity.StemByeong,
	entity.StemGi:     entity.StemByeong,
	entity.StemEul:    entity.StemMu,
	entity.StemGyeong: entity.StemMu,
	entity.StemByeong: entity.StemGyeong,
	entity.StemSin:    entity.StemGyeong,
	entity.StemJeong:  entity.StemIm,
	entity.StemIm:     entity.StemIm,
	entity.StemMu:     entity.StemGap,
	entity.StemGye:    entity.StemGap,
}

// monthBranchOrder is the canonical month-branch sequence, beginning at the
// tiger branch rather than calendar January.
var monthBranchOrder = [12]entity.Branch{
	entity.BranchIn, entity.BranchMyo, entity.BranchJin,
	entity.BranchSa, entity.BranchO, entity.BranchMi,
	entity.BranchSinB, entity.BranchYu, entity.BranchSul,
	entity.BranchHae, entity.BranchJa, entity.BranchChuk,
}

// monthlyCycles derives the twelve month pillars of targetYear from its
// year stem alone.
func monthlyCycles(dayStem entity.Stem, targetYear int, yearStem entity.Stem) []entity.FortuneCycleEntry {
	stem := monthStemStart[yearStem]

	entries := make([]entity.FortuneCycleEntry, 0, len(monthBranchOrder))
	for i, branch := range monthBranchOrder {
		pillar := entity.Pillar{Stem: stem, Branch: branch}
		entries = append(entries, entity.FortuneCycleEntry{
			Ordinal: i + 1,
			Year:    targetYear,
			Month:   i + 1,
			Pillar:  pillar,
			TenGod:  tenGod(dayStem, pillar.Stem),
		})
		stem = stem.Step(1)
	}
	return entries
}
