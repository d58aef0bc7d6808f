package entity

// RelationKind names one of the four branch relation families.
type RelationKind string

const (
	RelationHarm        RelationKind = "harm"        // 형
	RelationClash       RelationKind = "clash"       // 충
	RelationBreak       RelationKind = "break"       // 파
	RelationCombination RelationKind = "combination" // 합
)

// RelationKinds lists the families in their canonical order.
var RelationKinds = []RelationKind{RelationHarm, RelationClash, RelationBreak, RelationCombination}

var relationKorean = map[RelationKind]string{
	RelationHarm:        "형",
	RelationClash:       "충",
	RelationBreak:       "파",
	RelationCombination: "합",
}

// Korean returns the traditional Korean label, or "-" when unknown.
func (k RelationKind) Korean() string {
	if l, ok := relationKorean[k]; ok {
		return l
	}
	return "-"
}

// PillarPosition names one of the four chart positions.
type PillarPosition string

const (
	PositionYear  PillarPosition = "year"
	PositionMonth PillarPosition = "month"
	PositionDay   PillarPosition = "day"
	PositionHour  PillarPosition = "hour"
)

// PillarPositions lists the chart positions in their canonical order.
var PillarPositions = []PillarPosition{PositionYear, PositionMonth, PositionDay, PositionHour}

// BranchRelation annotates one matched pair of chart positions.
type BranchRelation struct {
	From     PillarPosition `json:"from"`
	To       PillarPosition `json:"to"`
	Branches string         `json:"branches"`
	Kind     RelationKind   `json:"kind"`
}

// relationPairs holds the unordered branch pairs of each family. Self-pairs
// (the four self-harms) match only when both positions carry the same branch.
var relationPairs = map[RelationKind][][2]Branch{
	RelationHarm: {
		{BranchIn, BranchSa}, {BranchIn, BranchSinB}, {BranchSa, BranchSinB},
		{BranchChuk, BranchSul}, {BranchChuk, BranchMi}, {BranchSul, BranchMi},
		{BranchJa, BranchMyo},
		{BranchJin, BranchJin}, {BranchO, BranchO}, {BranchYu, BranchYu}, {BranchHae, BranchHae},
	},
	RelationClash: {
		{BranchJa, BranchO}, {BranchChuk, BranchMi}, {BranchIn, BranchSinB},
		{BranchMyo, BranchYu}, {BranchJin, BranchSul}, {BranchSa, BranchHae},
	},
	RelationBreak: {
		{BranchJa, BranchYu}, {BranchChuk, BranchJin}, {BranchIn, BranchHae},
		{BranchSa, BranchSinB}, {BranchO, BranchMyo}, {BranchSul, BranchMi},
	},
	RelationCombination: {
		{BranchJa, BranchChuk}, {BranchIn, BranchHae}, {BranchMyo, BranchSul},
		{BranchJin, BranchYu}, {BranchSa, BranchSinB}, {BranchO, BranchMi},
	},
}

// RelatesAs reports whether the unordered branch pair (a, b) belongs to the
// given relation family.
func RelatesAs(kind RelationKind, a, b Branch) bool {
	a.mustValid()
	b.mustValid()
	for _, pair := range relationPairs[kind] {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return true
		}
	}
	return false
}
