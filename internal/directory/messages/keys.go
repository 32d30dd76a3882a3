// Package messages: 서비스 메시지 YAML 키 상수
package messages

// ErrorGeneric: 공통 에러 메시지 키
const (
	ErrorGeneric        = "error.generic"
	ErrorInvalidRequest = "error.invalid_request"
	ErrorNotFound       = "error.not_found"
	ErrorConflict       = "error.conflict"
)

// AuthInvalidPassword: 운영자 인증 관련 메시지 키
const (
	AuthInvalidPassword = "auth.invalid_password"
	AuthSuccess         = "auth.success"
)

// ArtistDeleted: 아티스트 관리 관련 메시지 키
const (
	ArtistDeleted            = "artist.deleted"
	ArtistTranslationDeleted = "artist.translation_deleted"
	ArtistTranslationPartial = "artist.translation_partial"
)

// RankSwapSuccess: 순위 교환 메시지 키
const (
	RankSwapSuccess = "rank.swap_success"
)

// ConcertDeleted: 공연 관리 메시지 키
const (
	ConcertDeleted = "concert.deleted"
)
