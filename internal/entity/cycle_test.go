package entity

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParsePillar_RoundTrip(t *testing.T) {
	for s := Stem(0); s < 10; s++ {
		for b := Branch(0); b < 12; b++ {
			want := Pillar{Stem: s, Branch: b}
			got, err := ParsePillar(want.String())
			if err != nil {
				t.Fatalf("ParsePillar(%s): %v", want, err)
			}
			if got != want {
				t.Fatalf("ParsePillar(%s) = %v, want %v", want, got, want)
			}
		}
	}
}

func TestParsePillar_Invalid(t *testing.T) {
	for _, bad := range []string{"", "甲", "甲子子", "XY", "子甲"} {
		if _, err := ParsePillar(bad); !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("ParsePillar(%q) err = %v, want ErrInvalidSymbol", bad, err)
		}
	}
}

func TestPillar_JSON(t *testing.T) {
	p := Pillar{Stem: StemGap, Branch: BranchJa}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"甲子"` {
		t.Fatalf("marshal = %s, want \"甲子\"", data)
	}
	var back Pillar
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != p {
		t.Fatalf("round trip = %v, want %v", back, p)
	}
}

func TestStemTables(t *testing.T) {
	if StemGap.Element() != ElementWood || StemGye.Element() != ElementWater {
		t.Error("stem element table broken at the cycle edges")
	}
	if StemGap.Polarity() != PolarityYang || StemEul.Polarity() != PolarityYin {
		t.Error("stem polarity must alternate starting yang")
	}
	if StemGye.Step(1) != StemGap || StemGap.Step(-1) != StemGye {
		t.Error("stem stepping must wrap mod 10")
	}
}

func TestBranchTables(t *testing.T) {
	if BranchJa.Element() != ElementWater || BranchHae.Element() != ElementWater {
		t.Error("branch element table broken at the cycle edges")
	}
	// The calendar data counts 子 as yin and 寅 as yang.
	if BranchJa.Polarity() != PolarityYin || BranchIn.Polarity() != PolarityYang {
		t.Error("branch polarity must follow the calendar convention")
	}
	if BranchHae.Step(1) != BranchJa || BranchJa.Step(-1) != BranchHae {
		t.Error("branch stepping must wrap mod 12")
	}
}

func TestHiddenStems(t *testing.T) {
	for b := Branch(0); b < 12; b++ {
		hs := b.HiddenStems()
		if len(hs) < 1 || len(hs) > 3 {
			t.Errorf("branch %v carries %d hidden stems, want 1-3", b, len(hs))
		}
	}
	// 寅 hides 戊丙甲 with 甲 dominant.
	if BranchIn.DominantStem() != StemGap {
		t.Errorf("dominant stem of 寅 = %v, want 甲", BranchIn.DominantStem())
	}
}

func TestInvalidSymbolPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for out-of-domain stem")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidSymbol) {
			t.Fatalf("panic value = %v, want ErrInvalidSymbol", r)
		}
	}()
	Stem(10).Element()
}

func TestGenerationAndControl(t *testing.T) {
	for i, e := range generationCycle {
		if ElementAt(i+1) == Controls(e) {
			t.Errorf("element %v: generation target equals control target", e)
		}
	}
	if Controls(ElementWood) != ElementEarth || Controls(ElementWater) != ElementFire {
		t.Error("control cycle broken")
	}
}

func TestPrincipalTerms(t *testing.T) {
	if !(SolarTermPoint{Name: "입춘"}).Principal() {
		t.Error("입춘 must be principal")
	}
	if (SolarTermPoint{Name: "하지"}).Principal() {
		t.Error("하지 is a secondary term")
	}
}
