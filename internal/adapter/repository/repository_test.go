package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hanulsoft/sajunet/internal/entity"
)

func openFixtureDB(t *testing.T, schema string, inserts []string) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	for _, stmt := range inserts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("insert fixture row: %v", err)
		}
	}
	return db
}

func calendarFixture(t *testing.T) *sql.DB {
	return openFixtureDB(t,
		`CREATE TABLE manseryeok (
			cd_sy INTEGER, cd_sm INTEGER, cd_sd INTEGER,
			cd_ly INTEGER, cd_lm INTEGER, cd_ld INTEGER,
			cd_leap_month INTEGER,
			cd_hyganjee TEXT, cd_hmganjee TEXT, cd_hdganjee TEXT
		)`,
		[]string{
			`INSERT INTO manseryeok VALUES (1990, 5, 15, 1990, 4, 21, 0, '庚午', '辛巳', '丙寅')`,
			`INSERT INTO manseryeok VALUES (1990, 5, 16, 1990, 4, 22, 0, '庚午', '辛巳', '丁卯')`,
		},
	)
}

func TestCalendarRepository_FindBySolar(t *testing.T) {
	repo := NewCalendarRepository(calendarFixture(t))

	day, err := repo.FindBySolar(context.Background(), 1990, 5, 15)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if day.YearPillar.String() != "庚午" || day.MonthPillar.String() != "辛巳" || day.DayPillar.String() != "丙寅" {
		t.Errorf("pillars = %s/%s/%s", day.YearPillar, day.MonthPillar, day.DayPillar)
	}
	if day.LunarMonth != 4 || day.LunarDay != 21 || day.LeapMonth {
		t.Errorf("lunar echo = %d/%d leap=%v", day.LunarMonth, day.LunarDay, day.LeapMonth)
	}
}

func TestCalendarRepository_FindByLunar(t *testing.T) {
	repo := NewCalendarRepository(calendarFixture(t))

	day, err := repo.FindByLunar(context.Background(), 1990, 4, 22, false)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if day.SolarDay != 16 {
		t.Errorf("solar day = %d, want 16", day.SolarDay)
	}

	// The leap flag takes part in the match.
	if _, err := repo.FindByLunar(context.Background(), 1990, 4, 22, true); !errors.Is(err, entity.ErrDateNotFound) {
		t.Errorf("leap mismatch err = %v, want ErrDateNotFound", err)
	}
}

func TestCalendarRepository_NotFound(t *testing.T) {
	repo := NewCalendarRepository(calendarFixture(t))

	_, err := repo.FindBySolar(context.Background(), 1990, 5, 17)
	if !errors.Is(err, entity.ErrDateNotFound) {
		t.Fatalf("err = %v, want ErrDateNotFound", err)
	}
}

func seasonFixture(t *testing.T) *sql.DB {
	return openFixtureDB(t,
		`CREATE TABLE season (
			name TEXT, year INTEGER, month INTEGER,
			day INTEGER, hour INTEGER, minute INTEGER
		)`,
		[]string{
			`INSERT INTO season VALUES ('입하', 1990, 5, 6, 3, 35)`,
			`INSERT INTO season VALUES ('소만', 1990, 5, 21, 10, 0)`,
			`INSERT INTO season VALUES ('망종', 1990, 6, 6, 5, 35)`,
			`INSERT INTO season VALUES ('소한', 1991, 1, 6, 2, 28)`,
		},
	)
}

func TestSolarTermRepository_NextAfter(t *testing.T) {
	repo := NewSolarTermRepository(seasonFixture(t))

	at := time.Date(1990, time.May, 15, 14, 0, 0, 0, time.UTC)
	point, err := repo.NextAfter(context.Background(), at)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if point.Name != "소만" {
		t.Errorf("next term = %q, want 소만 (raw events include secondary terms)", point.Name)
	}

	// Crossing a year boundary inside the window.
	at = time.Date(1990, time.June, 10, 0, 0, 0, 0, time.UTC)
	point, err = repo.NextAfter(context.Background(), at)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if point.Name != "소한" || point.At.Year() != 1991 {
		t.Errorf("next term = %q at %v, want 소한 1991", point.Name, point.At)
	}
}

func TestSolarTermRepository_PrevBefore(t *testing.T) {
	repo := NewSolarTermRepository(seasonFixture(t))

	at := time.Date(1990, time.May, 21, 10, 0, 0, 0, time.UTC)
	point, err := repo.PrevBefore(context.Background(), at)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Strictly before: an event at the exact query instant is excluded.
	if point.Name != "입하" {
		t.Errorf("prev term = %q, want 입하", point.Name)
	}
}

func TestSolarTermRepository_CurrentAt(t *testing.T) {
	repo := NewSolarTermRepository(seasonFixture(t))

	at := time.Date(1990, time.May, 21, 10, 0, 0, 0, time.UTC)
	point, err := repo.CurrentAt(context.Background(), at)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Not-after: the exact instant counts.
	if point.Name != "소만" {
		t.Errorf("current term = %q, want 소만", point.Name)
	}
}

func TestSolarTermRepository_WindowExhausted(t *testing.T) {
	repo := NewSolarTermRepository(seasonFixture(t))

	at := time.Date(2050, time.January, 1, 0, 0, 0, 0, time.UTC)
	if _, err := repo.NextAfter(context.Background(), at); !errors.Is(err, entity.ErrTermNotFound) {
		t.Fatalf("err = %v, want ErrTermNotFound", err)
	}
}
