package entity

import "fmt"

// TwelveStage is the life-cycle strength of a stem at a given branch.
type TwelveStage string

const (
	StageUnknown TwelveStage = "unknown"

	StageGrowth  TwelveStage = "growth"  // 장생
	StageBath    TwelveStage = "bath"    // 목욕
	StageCrown   TwelveStage = "crown"   // 관대
	StageOffice  TwelveStage = "office"  // 건록
	StagePeak    TwelveStage = "peak"    // 제왕
	StageDecline TwelveStage = "decline" // 쇠
	StageIllness TwelveStage = "illness" // 병
	StageDeath   TwelveStage = "death"   // 사
	StageGrave   TwelveStage = "grave"   // 묘
	StageVoid    TwelveStage = "void"    // 절
	StageEmbryo  TwelveStage = "embryo"  // 태
	StageNurture TwelveStage = "nurture" // 양
)

var twelveStageKorean = map[TwelveStage]string{
	StageGrowth:  "장생",
	StageBath:    "목욕",
	StageCrown:   "관대",
	StageOffice:  "건록",
	StagePeak:    "제왕",
	StageDecline: "쇠",
	StageIllness: "병",
	StageDeath:   "사",
	StageGrave:   "묘",
	StageVoid:    "절",
	StageEmbryo:  "태",
	StageNurture: "양",
}

// Korean returns the traditional Korean label, or "-" when unknown.
func (s TwelveStage) Korean() string {
	if k, ok := twelveStageKorean[s]; ok {
		return k
	}
	return "-"
}

// stageTable is the total 12x10 life-cycle table, branch-major. The rows
// reproduce the reference table used by the latest engine variant.
var stageTable = [12][10]TwelveStage{
	BranchJa: {
		StageBath, StageIllness, StageEmbryo, StageVoid, StageEmbryo,
		StageVoid, StageDeath, StageGrowth, StagePeak, StageOffice,
	},
	BranchChuk: {
		StageCrown, StageDecline, StageNurture, StageGrave, StageNurture,
		StageGrave, StageNurture, StageDecline, StageVoid, StageCrown,
	},
	BranchIn: {
		StageOffice, StagePeak, StageGrowth, StageDeath, StageGrowth,
		StageDeath, StageVoid, StageEmbryo, StageIllness, StageBath,
	},
	BranchMyo: {
		StagePeak, StageOffice, StageBath, StageIllness, StageBath,
		StageIllness, StageEmbryo, StageVoid, StageDeath, StageGrowth,
	},
	BranchJin: {
		StageDecline, StageCrown, StageCrown, StageDecline, StageCrown,
		StageDecline, StageNurture, StageGrave, StageGrave, StageNurture,
	},
	BranchSa: {
		StageIllness, StageBath, StageOffice, StagePeak, StageOffice,
		StagePeak, StageGrowth, StageDeath, StageVoid, StageEmbryo,
	},
	BranchO: {
		StageDeath, StageGrowth, StagePeak, StageOffice, StagePeak,
		StageOffice, StageBath, StageIllness, StageEmbryo, StageVoid,
	},
	BranchMi: {
		StageGrave, StageNurture, StageDecline, StageCrown, StageDecline,
		StageCrown, StageDecline, StageNurture, StageGrave, StageGrave,
	},
	BranchSinB: {
		StageVoid, StageEmbryo, StageIllness, StageBath, StageIllness,
		StageBath, StageOffice, StagePeak, StageGrowth, StageDeath,
	},
	BranchYu: {
		StageEmbryo, StageVoid, StageDeath, StageGrowth, StageDeath,
		StageGrowth, StagePeak, StageOffice, StageBath, StageIllness,
	},
	BranchSul: {
		StageNurture, StageGrave, StageGrave, StageNurture, StageGrave,
		StageNurture, StageDecline, StageCrown, StageCrown, StageDecline,
	},
	BranchHae: {
		StageGrowth, StageDeath, StageVoid, StageEmbryo, StageVoid,
		StageEmbryo, StageIllness, StageBath, StageOffice, StagePeak,
	},
}

// StageOf looks up the life-cycle stage of a stem at a branch. The table is
// total over the valid domain; out-of-domain values panic with
// ErrInvalidSymbol.
func StageOf(stem Stem, branch Branch) TwelveStage {
	if !stem.Valid() {
		panic(fmt.Errorf("%w: stem index %d", ErrInvalidSymbol, int(stem)))
	}
	if !branch.Valid() {
		panic(fmt.Errorf("%w: branch index %d", ErrInvalidSymbol, int(branch)))
	}
	return stageTable[branch][stem]
}
