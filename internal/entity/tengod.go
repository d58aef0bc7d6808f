package entity

// TenGod classifies the elemental relationship between the day stem and
// another chart element. The ten categories pair into five families, each
// with a same-polarity and an opposite-polarity variant.
type TenGod string

const (
	TenGodUnknown TenGod = "unknown"

	// TenGodSelf is the fixed label of the day pillar's own stem; it is
	// never produced by classification.
	TenGodSelf TenGod = "self"

	TenGodFellow            TenGod = "fellow"             // 비견
	TenGodRival             TenGod = "rival"              // 겁재
	TenGodEatingGod         TenGod = "eating_god"         // 식신
	TenGodHurtingOfficer    TenGod = "hurting_officer"    // 상관
	TenGodIndirectWealth    TenGod = "indirect_wealth"    // 편재
	TenGodDirectWealth      TenGod = "direct_wealth"      // 정재
	TenGodIndirectAuthority TenGod = "indirect_authority" // 편관
	TenGodDirectAuthority   TenGod = "direct_authority"   // 정관
	TenGodIndirectResource  TenGod = "indirect_resource"  // 편인
	TenGodDirectResource    TenGod = "direct_resource"    // 정인
)

var tenGodKorean = map[TenGod]string{
	TenGodSelf:              "일간",
	TenGodFellow:            "비견",
	TenGodRival:             "겁재",
	TenGodEatingGod:         "식신",
	TenGodHurtingOfficer:    "상관",
	TenGodIndirectWealth:    "편재",
	TenGodDirectWealth:      "정재",
	TenGodIndirectAuthority: "편관",
	TenGodDirectAuthority:   "정관",
	TenGodIndirectResource:  "편인",
	TenGodDirectResource:    "정인",
}

// Korean returns the traditional Korean label, or "-" when unknown.
func (t TenGod) Korean() string {
	if k, ok := tenGodKorean[t]; ok {
		return k
	}
	return "-"
}
