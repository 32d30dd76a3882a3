// Package redis: Valkey 기반 캐시 스토어
package redis

// 캐시 키 네임스페이스
const (
	// PopularArtistsKey: 인기 아티스트 목록 캐시 키
	PopularArtistsKey = "kstage:popular:artists"
)
