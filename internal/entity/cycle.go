package entity

import (
	"fmt"
)

// Element is one of the five phases every stem and branch belongs to.
type Element string

const (
	ElementWood  Element = "wood"
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementMetal Element = "metal"
	ElementWater Element = "water"
)

// Polarity is the yin/yang sign of a stem or branch.
type Polarity string

const (
	PolarityYang Polarity = "yang"
	PolarityYin  Polarity = "yin"
)

// Stem is one of the ten heavenly stems, identified by its cyclic index.
// All stem derivations are index arithmetic mod 10.
type Stem int

const (
	StemGap    Stem = iota // 甲
	StemEul                // 乙
	StemByeong             // 丙
	StemJeong              // 丁
	StemMu                 // 戊
	StemGi                 // 己
	StemGyeong             // 庚
	StemSin                // 辛
	StemIm                 // 壬
	StemGye                // 癸
)

// Branch is one of the twelve earthly branches, identified by its cyclic
// index. All branch derivations are index arithmetic mod 12.
type Branch int

const (
	BranchJa   Branch = iota // 子
	BranchChuk               // 丑
	BranchIn                 // 寅
	BranchMyo                // 卯
	BranchJin                // 辰
	BranchSa                 // 巳
	BranchO                  // 午
	BranchMi                 // 未
	BranchSinB               // 申
	BranchYu                 // 酉
	BranchSul                // 戌
	BranchHae                // 亥
)

var stemGlyphs = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var branchGlyphs = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var stemElements = [10]Element{
	ElementWood, ElementWood,
	ElementFire, ElementFire,
	ElementEarth, ElementEarth,
	ElementMetal, ElementMetal,
	ElementWater, ElementWater,
}

var branchElements = [12]Element{
	ElementWater, ElementEarth, ElementWood, ElementWood,
	ElementEarth, ElementFire, ElementFire, ElementEarth,
	ElementMetal, ElementMetal, ElementEarth, ElementWater,
}

// branchYang carries the polarity convention of the reference calendar data
// (子 counts as yin there, unlike some classical texts).
var branchYang = [12]bool{
	false, false, true, false, true, true,
	false, false, true, false, true, true,
}

// hiddenStems lists the 1-3 sub-stems each branch contains, in the
// traditional order; the last entry is the dominant one.
var hiddenStems = [12][]Stem{
	BranchJa:   {StemIm, StemGye},
	BranchChuk: {StemGye, StemSin, StemGi},
	BranchIn:   {StemMu, StemByeong, StemGap},
	BranchMyo:  {StemGap, StemEul},
	BranchJin:  {StemEul, StemGye, StemMu},
	BranchSa:   {StemMu, StemGyeong, StemByeong},
	BranchO:    {StemByeong, StemGi, StemJeong},
	BranchMi:   {StemJeong, StemEul, StemGi},
	BranchSinB: {StemMu, StemIm, StemGyeong},
	BranchYu:   {StemGyeong, StemSin},
	BranchSul:  {StemSin, StemJeong, StemMu},
	BranchHae:  {StemMu, StemGap, StemIm},
}

// generationCycle orders the elements so that each one generates its
// successor (wood→fire→earth→metal→water→wood).
var generationCycle = [5]Element{ElementWood, ElementFire, ElementEarth, ElementMetal, ElementWater}

// controls maps each element to the element it controls.
var controls = map[Element]Element{
	ElementWood:  ElementEarth,
	ElementFire:  ElementMetal,
	ElementEarth: ElementWater,
	ElementMetal: ElementWood,
	ElementWater: ElementFire,
}

// ElementIndex returns the element's position in the generation cycle.
func ElementIndex(e Element) int {
	for i, c := range generationCycle {
		if c == e {
			return i
		}
	}
	panic(fmt.Errorf("%w: element %q", ErrInvalidSymbol, e))
}

// ElementAt returns the generation-cycle element at index i mod 5.
func ElementAt(i int) Element {
	return generationCycle[((i%5)+5)%5]
}

// Controls reports the element the given element controls.
func Controls(e Element) Element {
	c, ok := controls[e]
	if !ok {
		panic(fmt.Errorf("%w: element %q", ErrInvalidSymbol, e))
	}
	return c
}

// Valid reports whether the stem lies in the ten-symbol domain.
func (s Stem) Valid() bool { return s >= 0 && s < 10 }

func (s Stem) mustValid() {
	if !s.Valid() {
		panic(fmt.Errorf("%w: stem index %d", ErrInvalidSymbol, int(s)))
	}
}

// Element returns the stem's fixed element. Panics with ErrInvalidSymbol on
// an out-of-domain value; such a value can only come from a logic defect.
func (s Stem) Element() Element {
	s.mustValid()
	return stemElements[s]
}

// Polarity returns the stem's yin/yang sign. Even indices are yang.
func (s Stem) Polarity() Polarity {
	s.mustValid()
	if s%2 == 0 {
		return PolarityYang
	}
	return PolarityYin
}

// Yang reports whether the stem is yang.
func (s Stem) Yang() bool { return s.Polarity() == PolarityYang }

// Step returns the stem n places further along the cycle (n may be negative).
func (s Stem) Step(n int) Stem {
	s.mustValid()
	return Stem((((int(s)+n)%10)+10)%10)
}

func (s Stem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stem(%d)", int(s))
	}
	return stemGlyphs[s]
}

// MarshalText serializes the stem as its Hanja glyph.
func (s Stem) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: stem index %d", ErrInvalidSymbol, int(s))
	}
	return []byte(stemGlyphs[s]), nil
}

// UnmarshalText parses a Hanja stem glyph.
func (s *Stem) UnmarshalText(text []byte) error {
	parsed, err := ParseStem(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Valid reports whether the branch lies in the twelve-symbol domain.
func (b Branch) Valid() bool { return b >= 0 && b < 12 }

func (b Branch) mustValid() {
	if !b.Valid() {
		panic(fmt.Errorf("%w: branch index %d", ErrInvalidSymbol, int(b)))
	}
}

// Element returns the branch's fixed element.
func (b Branch) Element() Element {
	b.mustValid()
	return branchElements[b]
}

// Polarity returns the branch's yin/yang sign per the calendar convention.
func (b Branch) Polarity() Polarity {
	b.mustValid()
	if branchYang[b] {
		return PolarityYang
	}
	return PolarityYin
}

// Yang reports whether the branch is yang.
func (b Branch) Yang() bool { return b.Polarity() == PolarityYang }

// HiddenStems returns the branch's hidden stems in traditional order. The
// returned slice must not be mutated.
func (b Branch) HiddenStems() []Stem {
	b.mustValid()
	return hiddenStems[b]
}

// DominantStem returns the last (dominant) hidden stem of the branch.
func (b Branch) DominantStem() Stem {
	hs := b.HiddenStems()
	return hs[len(hs)-1]
}

// Step returns the branch n places further along the cycle (n may be negative).
func (b Branch) Step(n int) Branch {
	b.mustValid()
	return Branch((((int(b)+n)%12)+12)%12)
}

func (b Branch) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Branch(%d)", int(b))
	}
	return branchGlyphs[b]
}

// MarshalText serializes the branch as its Hanja glyph.
func (b Branch) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: branch index %d", ErrInvalidSymbol, int(b))
	}
	return []byte(branchGlyphs[b]), nil
}

// UnmarshalText parses a Hanja branch glyph.
func (b *Branch) UnmarshalText(text []byte) error {
	parsed, err := ParseBranch(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseStem converts a Hanja glyph into a Stem.
func ParseStem(glyph string) (Stem, error) {
	for i, g := range stemGlyphs {
		if g == glyph {
			return Stem(i), nil
		}
	}
	return 0, fmt.Errorf("%w: stem glyph %q", ErrInvalidSymbol, glyph)
}

// ParseBranch converts a Hanja glyph into a Branch.
func ParseBranch(glyph string) (Branch, error) {
	for i, g := range branchGlyphs {
		if g == glyph {
			return Branch(i), nil
		}
	}
	return 0, fmt.Errorf("%w: branch glyph %q", ErrInvalidSymbol, glyph)
}

// Pillar is a stem+branch pair occupying one chart position.
type Pillar struct {
	Stem   Stem
	Branch Branch
}

func (p Pillar) String() string {
	return p.Stem.String() + p.Branch.String()
}

// MarshalText serializes the pillar as the two-glyph string stored in the
// reference calendar rows (e.g. 甲子).
func (p Pillar) MarshalText() ([]byte, error) {
	if !p.Stem.Valid() || !p.Branch.Valid() {
		return nil, fmt.Errorf("%w: pillar %d/%d", ErrInvalidSymbol, int(p.Stem), int(p.Branch))
	}
	return []byte(p.String()), nil
}

// UnmarshalText parses a two-glyph pillar string.
func (p *Pillar) UnmarshalText(text []byte) error {
	parsed, err := ParsePillar(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePillar parses a two-glyph pillar string such as 甲子.
func ParsePillar(ganji string) (Pillar, error) {
	runes := []rune(ganji)
	if len(runes) != 2 {
		return Pillar{}, fmt.Errorf("%w: pillar %q", ErrInvalidSymbol, ganji)
	}
	stem, err := ParseStem(string(runes[0]))
	if err != nil {
		return Pillar{}, err
	}
	branch, err := ParseBranch(string(runes[1]))
	if err != nil {
		return Pillar{}, err
	}
	return Pillar{Stem: stem, Branch: branch}, nil
}
