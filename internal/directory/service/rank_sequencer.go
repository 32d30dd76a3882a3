// Package service: 디렉터리 서비스의 도메인 로직
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kstage/kstage-go/internal/directory/config"
	apperrors "github.com/kstage/kstage-go/internal/directory/errors"
	"github.com/kstage/kstage-go/internal/directory/redis"
	"github.com/kstage/kstage-go/internal/directory/repository"
)

// RankSequencer: 두 아티스트의 순위를 교환하는 서비스
//
// rank 컬럼은 유니크하므로 한쪽을 임시 순위로 비켜 세운 뒤 세 단계로 교환한다.
//  1. A → 임시 순위 (사용 중인 어떤 순위와도 겹치지 않는 값)
//  2. B → A의 원래 순위
//  3. A → B의 원래 순위
//
// 각 단계는 버전 일치 조건으로 갱신되어, 교환 도중 다른 요청이 끼어들면
// ConflictError로 중단된다.
type RankSequencer struct {
	repo         *repository.Repository
	popularCache *redis.PopularStore // nil이면 캐시 미사용
	logger       *slog.Logger
}

// NewRankSequencer: 새로운 RankSequencer 인스턴스 생성
func NewRankSequencer(repo *repository.Repository, popularCache *redis.PopularStore, logger *slog.Logger) *RankSequencer {
	return &RankSequencer{repo: repo, popularCache: popularCache, logger: logger}
}

// SwapResult: 순위 교환 결과
type SwapResult struct {
	ArtistAID uint64 `json:"artist_a_id"`
	ArtistBID uint64 `json:"artist_b_id"`
	RankA     int    `json:"rank_a"` // 교환 후 A의 순위 (B의 원래 순위)
	RankB     int    `json:"rank_b"` // 교환 후 B의 순위 (A의 원래 순위)
}

// Swap: 두 아티스트의 순위를 교환한다.
// 같은 아티스트를 두 번 지정하거나 두 순위가 이미 같으면 ValidationError를 반환한다.
func (s *RankSequencer) Swap(ctx context.Context, artistAID, artistBID uint64) (*SwapResult, error) {
	if artistAID == artistBID {
		return nil, apperrors.ValidationError{
			Field:   "artist_b_id",
			Message: "cannot swap an artist with itself",
		}
	}

	artistA, err := s.repo.GetArtist(ctx, artistAID)
	if err != nil {
		return nil, err
	}
	artistB, err := s.repo.GetArtist(ctx, artistBID)
	if err != nil {
		return nil, err
	}

	if artistA.Rank == artistB.Rank {
		return nil, apperrors.ValidationError{
			Field:   "rank",
			Message: fmt.Sprintf("both artists already hold rank %d", artistA.Rank),
		}
	}

	sentinel, err := s.sentinelRank(ctx)
	if err != nil {
		return nil, err
	}

	rankA := artistA.Rank
	rankB := artistB.Rank

	// 1단계: A를 임시 순위로 이동해 rankA를 비운다.
	if err := s.repo.UpdateArtistRank(ctx, artistA.ID, sentinel, artistA.Version); err != nil {
		return nil, fmt.Errorf("swap step 1 (park artist %d): %w", artistA.ID, err)
	}

	// 2단계: B를 A의 원래 순위로 이동한다.
	if err := s.repo.UpdateArtistRank(ctx, artistB.ID, rankA, artistB.Version); err != nil {
		return nil, fmt.Errorf("swap step 2 (move artist %d to rank %d): %w", artistB.ID, rankA, err)
	}

	// 3단계: A를 B의 원래 순위로 이동한다. 1단계에서 버전이 1 증가했다.
	if err := s.repo.UpdateArtistRank(ctx, artistA.ID, rankB, artistA.Version+1); err != nil {
		return nil, fmt.Errorf("swap step 3 (move artist %d to rank %d): %w", artistA.ID, rankB, err)
	}

	s.logger.Info("rank_swap_completed",
		"artist_a_id", artistA.ID,
		"artist_b_id", artistB.ID,
		"rank_a", rankB,
		"rank_b", rankA,
	)

	if s.popularCache != nil {
		if err := s.popularCache.Invalidate(ctx); err != nil {
			s.logger.Warn("popular_cache_invalidate_failed", "error", err)
		}
	}

	return &SwapResult{
		ArtistAID: artistA.ID,
		ArtistBID: artistB.ID,
		RankA:     rankB,
		RankB:     rankA,
	}, nil
}

// sentinelRank: 사용 중인 어떤 순위보다 큰 임시 순위를 계산한다.
// 최소 하한을 보장해 평소 순위 대역과 확실히 분리한다.
func (s *RankSequencer) sentinelRank(ctx context.Context) (int, error) {
	maxRank, err := s.repo.MaxRank(ctx)
	if err != nil {
		return 0, err
	}

	sentinel := maxRank + config.SwapSentinelOffset
	if sentinel < config.SwapSentinelFloor {
		sentinel = config.SwapSentinelFloor
	}
	return sentinel, nil
}
