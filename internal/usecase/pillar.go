package usecase

import (
	"github.com/hanulsoft/sajunet/internal/entity"
)

const (
	minutesPerDay  = 24 * 60
	minutesPerSlot = 120
)

// hourBranchIndex maps a clock time to one of the twelve two-hour branch
// slots. Slot 0 starts at 23:00 minus the pivot offset; the whole mapping is
// periodic over the 1440-minute day.
func hourBranchIndex(hour, minute, pivotMinutes int) entity.Branch {
	total := hour*60 + minute
	start := 23*60 - pivotMinutes
	t := (total - start) % minutesPerDay
	if t < 0 {
		t += minutesPerDay
	}
	return entity.Branch(t / minutesPerSlot)
}

// hourPillar derives the hour pillar from the day stem and the hour branch.
// Each day stem fixes one starting hour-stem sequence, repeating every five
// day stems.
func hourPillar(dayStem entity.Stem, hourBranch entity.Branch) entity.Pillar {
	stem := entity.Stem((int(dayStem)%5*2 + int(hourBranch)) % 10)
	return entity.Pillar{Stem: stem, Branch: hourBranch}
}

// tenGod classifies the relationship between the day stem and another stem.
// Exactly one of the five family tests matches for any valid pair; invalid
// stems yield the unknown sentinel instead of failing.
func tenGod(dayStem, other entity.Stem) entity.TenGod {
	if !dayStem.Valid() || !other.Valid() {
		return entity.TenGodUnknown
	}
	return classifyTenGod(dayStem.Element(), other.Element(), dayStem.Polarity() == other.Polarity())
}

// tenGodFromBranch classifies a branch against the day stem using the
// branch's own element and polarity (not its hidden stems).
func tenGodFromBranch(dayStem entity.Stem, branch entity.Branch) entity.TenGod {
	if !dayStem.Valid() || !branch.Valid() {
		return entity.TenGodUnknown
	}
	return classifyTenGod(dayStem.Element(), branch.Element(), dayStem.Polarity() == branch.Polarity())
}

func classifyTenGod(day, other entity.Element, samePolarity bool) entity.TenGod {
	di := entity.ElementIndex(day)

	switch {
	case other == day:
		if samePolarity {
			return entity.TenGodFellow
		}
		return entity.TenGodRival

	case other == entity.ElementAt(di+1): // day generates other
		if samePolarity {
			return entity.TenGodEatingGod
		}
		return entity.TenGodHurtingOfficer

	case other == entity.Controls(day): // day controls other
		if samePolarity {
			return entity.TenGodIndirectWealth
		}
		return entity.TenGodDirectWealth

	case entity.Controls(other) == day: // other controls day
		if samePolarity {
			return entity.TenGodIndirectAuthority
		}
		return entity.TenGodDirectAuthority

	case other == entity.ElementAt(di+4): // other generates day
		if samePolarity {
			return entity.TenGodIndirectResource
		}
		return entity.TenGodDirectResource
	}

	return entity.TenGodUnknown
}

// branchRelations tests every unordered pair of the four chart positions
// against the four relation families. A pair may match several families;
// each match is emitted independently.
func branchRelations(year, month, day, hour entity.Branch) []entity.BranchRelation {
	positions := []struct {
		pos    entity.PillarPosition
		branch entity.Branch
	}{
		{entity.PositionYear, year},
		{entity.PositionMonth, month},
		{entity.PositionDay, day},
		{entity.PositionHour, hour},
	}

	var found []entity.BranchRelation
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			a, b := positions[i], positions[j]
			for _, kind := range entity.RelationKinds {
				if entity.RelatesAs(kind, a.branch, b.branch) {
					found = append(found, entity.BranchRelation{
						From:     a.pos,
						To:       b.pos,
						Branches: a.branch.String() + b.branch.String(),
						Kind:     kind,
					})
				}
			}
		}
	}
	return found
}

// pillarReading assembles one chart position's derived classifications. The
// day position's stem god is the fixed self label, never computed.
func pillarReading(position entity.PillarPosition, pillar entity.Pillar, dayStem entity.Stem) entity.PillarReading {
	stemGod := tenGod(dayStem, pillar.Stem)
	if position == entity.PositionDay {
		stemGod = entity.TenGodSelf
	}
	return entity.PillarReading{
		Position:    position,
		Pillar:      pillar,
		StemGod:     stemGod,
		BranchGod:   tenGodFromBranch(dayStem, pillar.Branch),
		Stage:       entity.StageOf(dayStem, pillar.Branch),
		HiddenStems: pillar.Branch.HiddenStems(),
	}
}
