package selection

import (
	"testing"
	"time"

	"github.com/newswire-labs/chirp/internal/feeds"
)

func scored(title string, score float64, published time.Time) Scored {
	return Scored{
		Item:  feeds.Item{Title: title, Published: published},
		Score: score,
	}
}

func TestSelectRanking(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// A and B tie on score, A is newer; C scores lower but is newest
	a := scored("A", 0.9, day.Add(10*time.Hour))
	b := scored("B", 0.9, day.Add(9*time.Hour))
	c := scored("C", 0.8, day.Add(11*time.Hour))

	got := New(0.8).Select([]Scored{c, b, a})

	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d: expected %s, got %s", i, title, got[i].Title)
		}
	}
}

func TestSelectThresholdInclusive(t *testing.T) {
	exact := scored("exact", 0.7, time.Time{})
	below := scored("below", 0.69, time.Time{})

	got := New(0.7).Select([]Scored{exact, below})
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	if got[0].Title != "exact" {
		t.Errorf("item scoring exactly the threshold must be kept, got %s", got[0].Title)
	}
}

func TestSelectMissingTimestampRanksLast(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	undated := scored("undated", 0.9, time.Time{})
	old := scored("old", 0.9, day)

	got := New(0.5).Select([]Scored{undated, old})
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].Title != "old" || got[1].Title != "undated" {
		t.Errorf("undated item should rank last among equal scores, got [%s, %s]", got[0].Title, got[1].Title)
	}
}

func TestSelectThresholdZeroKeepsAll(t *testing.T) {
	items := []Scored{
		scored("a", 0.0, time.Time{}),
		scored("b", 0.5, time.Time{}),
	}

	got := New(0).Select(items)
	if len(got) != 2 {
		t.Errorf("threshold 0 should keep everything, got %d items", len(got))
	}
}

func TestSelectEmptyInput(t *testing.T) {
	got := New(0.7).Select(nil)
	if len(got) != 0 {
		t.Errorf("expected no items, got %d", len(got))
	}
}
