package service

import (
	"context"
	"testing"

	apperrors "github.com/kstage/kstage-go/internal/directory/errors"
	"github.com/kstage/kstage-go/internal/directory/repository"
)

func TestRankSequencerSwap(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	sequencer := NewRankSequencer(repo, nil, newTestLogger())

	artistX := seedArtist(t, repo, "NewJeans", 3)
	artistY := seedArtist(t, repo, "IVE", 7)
	seedArtist(t, repo, "aespa", 1)

	result, err := sequencer.Swap(ctx, artistX.ID, artistY.ID)
	if err != nil {
		t.Fatalf("swap failed: %v", err)
	}

	if result.RankA != 7 || result.RankB != 3 {
		t.Errorf("unexpected swap result: rankA=%d rankB=%d", result.RankA, result.RankB)
	}

	reloadedX, err := repo.GetArtist(ctx, artistX.ID)
	if err != nil {
		t.Fatal(err)
	}
	reloadedY, err := repo.GetArtist(ctx, artistY.ID)
	if err != nil {
		t.Fatal(err)
	}

	if reloadedX.Rank != 7 {
		t.Errorf("artist X rank = %d, want 7", reloadedX.Rank)
	}
	if reloadedY.Rank != 3 {
		t.Errorf("artist Y rank = %d, want 3", reloadedY.Rank)
	}

	// 다른 아티스트의 순위는 건드리지 않는다.
	artists, _, err := repo.ListArtists(ctx, repository.ListArtistsParams{})
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range artists {
		if a.ArtistNameEN == "aespa" && a.Rank != 1 {
			t.Errorf("uninvolved artist rank changed: %d", a.Rank)
		}
		if a.Rank >= 9999 {
			t.Errorf("temporary rank leaked: artist=%s rank=%d", a.ArtistNameEN, a.Rank)
		}
	}
}

func TestRankSequencerSwapSelf(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	sequencer := NewRankSequencer(repo, nil, newTestLogger())

	artist := seedArtist(t, repo, "BLACKPINK", 2)

	_, err := sequencer.Swap(ctx, artist.ID, artist.ID)
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	reloaded, err := repo.GetArtist(ctx, artist.ID)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Rank != 2 {
		t.Errorf("rank changed on rejected self-swap: %d", reloaded.Rank)
	}
	if reloaded.Version != artist.Version {
		t.Errorf("version changed on rejected self-swap: %d", reloaded.Version)
	}
}

func TestRankSequencerSwapMissingArtist(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	sequencer := NewRankSequencer(repo, nil, newTestLogger())

	artist := seedArtist(t, repo, "ITZY", 5)

	_, err := sequencer.Swap(ctx, artist.ID, artist.ID+100)
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRankSequencerSwapVersionConflict(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	sequencer := NewRankSequencer(repo, nil, newTestLogger())

	artistA := seedArtist(t, repo, "TWICE", 4)
	artistB := seedArtist(t, repo, "LE SSERAFIM", 6)

	// 교환이 읽은 버전을 다른 갱신이 먼저 소모한 상황을 재현한다.
	if err := repo.UpdateArtistRank(ctx, artistA.ID, 40, artistA.Version); err != nil {
		t.Fatal(err)
	}
	if err := repo.UpdateArtistRank(ctx, artistA.ID, 4, artistA.Version+1); err != nil {
		t.Fatal(err)
	}

	// 낡은 버전으로 직접 갱신하면 충돌이어야 한다.
	err := repo.UpdateArtistRank(ctx, artistA.ID, 50, artistA.Version)
	if !apperrors.IsConflict(err) {
		t.Fatalf("expected ConflictError for stale version, got %v", err)
	}

	// 최신 상태를 다시 읽는 교환은 성공한다.
	result, err := sequencer.Swap(ctx, artistA.ID, artistB.ID)
	if err != nil {
		t.Fatalf("swap after external update failed: %v", err)
	}
	if result.RankA != 6 || result.RankB != 4 {
		t.Errorf("unexpected swap result: rankA=%d rankB=%d", result.RankA, result.RankB)
	}
}

func TestRankSequencerSentinelAboveMaxRank(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	sequencer := NewRankSequencer(repo, nil, newTestLogger())

	// 평소 순위 대역이 하한을 넘는 경우에도 임시 순위가 겹치지 않아야 한다.
	artistA := seedArtist(t, repo, "Stray Kids", 9998)
	artistB := seedArtist(t, repo, "ATEEZ", 12000)

	result, err := sequencer.Swap(ctx, artistA.ID, artistB.ID)
	if err != nil {
		t.Fatalf("swap with high ranks failed: %v", err)
	}
	if result.RankA != 12000 || result.RankB != 9998 {
		t.Errorf("unexpected swap result: rankA=%d rankB=%d", result.RankA, result.RankB)
	}
}
