package food

import (
	"context"
	"testing"
	"time"
)

func mustAppend(t *testing.T, repo Repository, e *Entry) {
	t.Helper()
	if err := repo.Append(context.Background(), e); err != nil {
		t.Fatalf("Append: %v", err)
	}
}

// Day filtering goes by the entry's own calendar date, not the
// instant's UTC date. An entry stamped 01:00+05:30 belongs to its
// local day even though the instant falls on the previous UTC day.
func TestListByUserAndDateUsesEntryCalendarDay(t *testing.T) {
	repo := NewInMemoryRepository()

	ist := time.FixedZone("IST", 5*3600+1800)
	loggedAt := time.Date(2024, 3, 5, 1, 0, 0, 0, ist) // 2024-03-04T19:30Z

	mustAppend(t, repo, &Entry{
		UserID:       "u1",
		Category:     "fruit",
		DetectedName: "Apple",
		LoggedAt:     loggedAt,
	})

	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	got, err := repo.ListByUserAndDate(context.Background(), "u1", day)
	if err != nil {
		t.Fatalf("ListByUserAndDate: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected the entry on its local day, got %d entries", len(got))
	}

	utcDay := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	got, err = repo.ListByUserAndDate(context.Background(), "u1", utcDay)
	if err != nil {
		t.Fatalf("ListByUserAndDate: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("entry leaked onto its UTC day: %d entries", len(got))
	}
}

func TestListByUserRangeUsesEntryCalendarDay(t *testing.T) {
	repo := NewInMemoryRepository()

	ist := time.FixedZone("IST", 5*3600+1800)
	mustAppend(t, repo, &Entry{
		UserID:       "u1",
		Category:     "fruit",
		DetectedName: "Apple",
		LoggedAt:     time.Date(2024, 3, 5, 1, 0, 0, 0, ist),
	})
	mustAppend(t, repo, &Entry{
		UserID:       "u1",
		Category:     "dairy",
		DetectedName: "Milk",
		LoggedAt:     time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC),
	})

	from := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	got, err := repo.ListByUser(context.Background(), "u1", 0, &from, nil)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 1 || got[0].DetectedName != "Apple" {
		t.Fatalf("range filter off the local day: %+v", got)
	}
}
