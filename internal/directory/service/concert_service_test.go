package service

import (
	"context"
	"testing"
	"time"

	"github.com/kstage/kstage-go/internal/common/ptr"
	apperrors "github.com/kstage/kstage-go/internal/directory/errors"
	"github.com/kstage/kstage-go/internal/directory/repository"
)

func TestConcertServiceCreate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	svc := NewConcertService(repo, newTestLogger())

	artist := seedArtist(t, repo, "NewJeans", 1)
	start := time.Date(2026, 10, 1, 19, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)

	concert, err := svc.CreateConcert(ctx, SaveConcertParams{
		ArtistID:  ptr.Uint64(artist.ID),
		Type:      repository.ConcertTypeTour,
		StartDate: start,
		EndDate:   &end,
		Venue:     "KSPO Dome",
		City:      "Seoul",
		Country:   "KR",
	})
	if err != nil {
		t.Fatalf("create concert failed: %v", err)
	}

	// 아티스트 참조가 있으면 이름은 레코드에서 복사된다.
	if concert.ArtistNameEN != "NewJeans" {
		t.Errorf("artist name not denormalized: %q", concert.ArtistNameEN)
	}
}

func TestConcertServiceCreateWithoutArtist(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	svc := NewConcertService(repo, newTestLogger())

	concert, err := svc.CreateConcert(ctx, SaveConcertParams{
		ArtistNameEN: "Various Artists",
		StartDate:    time.Date(2026, 12, 25, 18, 0, 0, 0, time.UTC),
		Venue:        "Gocheok Sky Dome",
	})
	if err != nil {
		t.Fatalf("create concert failed: %v", err)
	}
	if concert.ArtistID != nil {
		t.Error("artist id should be nil")
	}
	if concert.Type != repository.ConcertTypeConcert {
		t.Errorf("type default = %s, want CONCERT", concert.Type)
	}
}

func TestConcertServiceValidation(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	svc := NewConcertService(repo, newTestLogger())

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	badEnd := start.AddDate(0, 0, -1)

	cases := []struct {
		name   string
		params SaveConcertParams
	}{
		{"MissingArtist", SaveConcertParams{StartDate: start}},
		{"MissingStartDate", SaveConcertParams{ArtistNameEN: "IVE"}},
		{"EndBeforeStart", SaveConcertParams{ArtistNameEN: "IVE", StartDate: start, EndDate: &badEnd}},
		{"UnknownType", SaveConcertParams{ArtistNameEN: "IVE", StartDate: start, Type: "FESTIVAL"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateConcert(ctx, tc.params)
			if !apperrors.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}

	t.Run("MissingReferencedArtist", func(t *testing.T) {
		_, err := svc.CreateConcert(ctx, SaveConcertParams{
			ArtistID:  ptr.Uint64(999),
			StartDate: start,
		})
		if !apperrors.IsNotFound(err) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}

func TestConcertServiceListByArtist(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	svc := NewConcertService(repo, newTestLogger())

	artistA := seedArtist(t, repo, "IVE", 1)
	artistB := seedArtist(t, repo, "aespa", 2)

	for i, artist := range []*repository.Artist{artistA, artistA, artistB} {
		_, err := svc.CreateConcert(ctx, SaveConcertParams{
			ArtistID:  ptr.Uint64(artist.ID),
			StartDate: time.Date(2026, 10, 1+i, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	concerts, total, err := svc.ListConcerts(ctx, repository.ListConcertsParams{
		ArtistID: ptr.Uint64(artistA.ID),
	})
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || len(concerts) != 2 {
		t.Fatalf("artist A concerts = %d (total %d), want 2", len(concerts), total)
	}

	// 최신 시작일 우선 정렬
	if concerts[0].StartDate.Before(concerts[1].StartDate) {
		t.Error("concerts not sorted by start_date desc")
	}
}

func TestConcertServiceUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	svc := NewConcertService(repo, newTestLogger())

	created, err := svc.CreateConcert(ctx, SaveConcertParams{
		ArtistNameEN: "TWICE",
		StartDate:    time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		Venue:        "Inspire Arena",
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.UpdateConcert(ctx, created.ID, SaveConcertParams{
		ArtistNameEN: "TWICE",
		StartDate:    created.StartDate,
		Venue:        "Inspire Arena",
		City:         "Incheon",
		Type:         repository.ConcertTypeFanmeeting,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.City != "Incheon" || updated.Type != repository.ConcertTypeFanmeeting {
		t.Errorf("update not applied: city=%q type=%s", updated.City, updated.Type)
	}

	if err := svc.DeleteConcert(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetConcert(ctx, created.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}
