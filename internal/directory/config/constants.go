package config

const (
	// DefaultServerPort: 디렉터리 API 서버 기본 포트
	DefaultServerPort = 8085

	// PopularArtistLimit: 인기 아티스트 목록 상한
	PopularArtistLimit = 10

	// SwapSentinelFloor: 순위 교환 시 사용하는 임시 순위의 하한
	// 현재 최대 순위보다 항상 크도록 max(최대 순위+오프셋, 하한)으로 계산한다.
	SwapSentinelFloor = 9999

	// SwapSentinelOffset: 최대 순위에 더해 임시 순위를 만드는 오프셋
	SwapSentinelOffset = 1000
)

// SupportedLangs: 소개문 번역을 허용하는 언어 코드 집합
var SupportedLangs = map[string]bool{
	"ko": true,
	"en": true,
	"ja": true,
	"zh": true,
	"es": true,
}
