package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"

	"github.com/kstage/kstage-go/internal/common/valkeyx"
	"github.com/kstage/kstage-go/internal/directory/repository"
)

// PopularStore: 인기 아티스트 목록을 Valkey에 JSON으로 캐싱한다.
type PopularStore struct {
	client valkey.Client
	ttl    time.Duration
}

// NewPopularStore: 새로운 PopularStore 인스턴스 생성
func NewPopularStore(client valkey.Client, ttl time.Duration) *PopularStore {
	return &PopularStore{client: client, ttl: ttl}
}

// Get: 캐시된 인기 아티스트 목록을 조회한다. 캐시 미스면 (nil, false, nil)이다.
func (s *PopularStore) Get(ctx context.Context) ([]repository.Artist, bool, error) {
	if s == nil || s.client == nil {
		return nil, false, nil
	}

	raw, found, err := valkeyx.GetBytes(ctx, s.client, PopularArtistsKey)
	if err != nil {
		return nil, false, fmt.Errorf("get popular cache failed: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	var artists []repository.Artist
	if err := json.Unmarshal(raw, &artists); err != nil {
		return nil, false, fmt.Errorf("unmarshal popular cache failed: %w", err)
	}
	return artists, true, nil
}

// Set: 인기 아티스트 목록을 TTL과 함께 캐싱한다.
func (s *PopularStore) Set(ctx context.Context, artists []repository.Artist) error {
	if s == nil || s.client == nil {
		return nil
	}

	data, err := json.Marshal(artists)
	if err != nil {
		return fmt.Errorf("marshal popular cache failed: %w", err)
	}
	if err := valkeyx.SetStringEX(ctx, s.client, PopularArtistsKey, string(data), s.ttl); err != nil {
		return fmt.Errorf("set popular cache failed: %w", err)
	}
	return nil
}

// Invalidate: 캐시를 무효화한다. 순위나 활성 상태가 바뀔 때 호출한다.
func (s *PopularStore) Invalidate(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	if err := valkeyx.DeleteKeys(ctx, s.client, PopularArtistsKey); err != nil {
		return fmt.Errorf("invalidate popular cache failed: %w", err)
	}
	return nil
}
