package service

import (
	"context"
	"log/slog"

	"github.com/kstage/kstage-go/internal/directory/config"
	"github.com/kstage/kstage-go/internal/directory/redis"
	"github.com/kstage/kstage-go/internal/directory/repository"
)

// PopularService: 인기 아티스트 목록(활성 아티스트 순위 상위 10)을 제공한다.
// 캐시가 있으면 캐시 우선으로 조회하고, 미스 시 저장소에서 읽어 채운다.
type PopularService struct {
	repo   *repository.Repository
	cache  *redis.PopularStore // nil이면 매번 저장소 조회
	logger *slog.Logger
}

// NewPopularService: 새로운 PopularService 인스턴스 생성
func NewPopularService(repo *repository.Repository, cache *redis.PopularStore, logger *slog.Logger) *PopularService {
	return &PopularService{repo: repo, cache: cache, logger: logger}
}

// ListPopular: 활성 아티스트를 순위 오름차순으로 최대 10명 반환한다.
// 캐시 장애는 저장소 폴백으로 흡수한다.
func (s *PopularService) ListPopular(ctx context.Context) ([]repository.Artist, error) {
	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("popular_cache_get_failed", "error", err)
		} else if found {
			return cached, nil
		}
	}

	artists, err := s.repo.ListTopActive(ctx, config.PopularArtistLimit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, artists); err != nil {
			s.logger.Warn("popular_cache_set_failed", "error", err)
		}
	}

	return artists, nil
}
