package httpapi

import (
	"time"

	"github.com/kstage/kstage-go/internal/directory/repository"
	"github.com/kstage/kstage-go/internal/directory/service"
)

type (
	// ArtistSaveRequest: 아티스트 생성/수정 요청 DTO
	ArtistSaveRequest struct {
		Rank         int               `json:"rank"`
		ArtistNameEN string            `json:"artist_name_en"`
		ArtistNameKR string            `json:"artist_name_kr"`
		Category     string            `json:"category"`
		FanCount     string            `json:"fan_count"`
		Agency       string            `json:"agency"`
		FandomName   string            `json:"fandom_name"`
		ColorCode    string            `json:"color_code"`
		IsActive     *bool             `json:"is_active,omitempty"`
		Descriptions map[string]string `json:"descriptions,omitempty"` // 언어 코드 → 소개문
	}

	// ArtistSaveResponse: 아티스트 저장 응답 DTO
	// 번역 실패는 아티스트 저장 성공과 별도로 보고된다.
	ArtistSaveResponse struct {
		Artist              *repository.Artist   `json:"artist"`
		TranslationFailures []TranslationFailure `json:"translation_failures,omitempty"`
	}

	// TranslationFailure: 언어별 번역 저장 실패 DTO
	TranslationFailure struct {
		Lang    string `json:"lang"`
		Message string `json:"message"`
	}

	// ArtistListResponse: 아티스트 목록 응답 DTO
	ArtistListResponse struct {
		Artists []repository.Artist `json:"artists"`
		Total   int64               `json:"total"`
	}

	// RankSwapRequest: 순위 교환 요청 DTO
	RankSwapRequest struct {
		ArtistAID uint64 `json:"artist_a_id"`
		ArtistBID uint64 `json:"artist_b_id"`
	}

	// RankSwapResponse: 순위 교환 응답 DTO
	RankSwapResponse struct {
		Message string              `json:"message"`
		Result  *service.SwapResult `json:"result"`
	}

	// TranslationUpdateRequest: 단일 언어 소개문 수정 요청 DTO
	TranslationUpdateRequest struct {
		Description string `json:"description"`
	}

	// ConcertSaveRequest: 공연 생성/수정 요청 DTO
	ConcertSaveRequest struct {
		ArtistID     *uint64    `json:"artist_id,omitempty"`
		ArtistNameEN string     `json:"artist_name_en"`
		ArtistNameKR string     `json:"artist_name_kr"`
		Type         string     `json:"type"`
		StartDate    time.Time  `json:"start_date"`
		EndDate      *time.Time `json:"end_date,omitempty"`
		Venue        string     `json:"venue"`
		City         string     `json:"city"`
		Country      string     `json:"country"`
		Price        string     `json:"price"`
		Description  string     `json:"description"`
		Memo         string     `json:"memo"`
	}

	// ConcertListResponse: 공연 목록 응답 DTO
	ConcertListResponse struct {
		Concerts []repository.Concert `json:"concerts"`
		Total    int64                `json:"total"`
	}

	// AuthRequest: 운영자 인증 요청 DTO
	AuthRequest struct {
		Password string `json:"password"`
	}

	// AuthResponse: 운영자 인증 응답 DTO
	AuthResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}

	// MessageResponse: 단순 메시지 응답 DTO
	MessageResponse struct {
		Message string `json:"message"`
	}
)

func toTranslationFailures(failures []service.LangFailure) []TranslationFailure {
	if len(failures) == 0 {
		return nil
	}
	out := make([]TranslationFailure, 0, len(failures))
	for _, f := range failures {
		out = append(out, TranslationFailure{Lang: f.Lang, Message: f.Message})
	}
	return out
}

func (r ArtistSaveRequest) toParams() service.SaveArtistParams {
	return service.SaveArtistParams{
		Rank:         r.Rank,
		ArtistNameEN: r.ArtistNameEN,
		ArtistNameKR: r.ArtistNameKR,
		Category:     repository.ArtistCategory(r.Category),
		FanCount:     r.FanCount,
		Agency:       r.Agency,
		FandomName:   r.FandomName,
		ColorCode:    r.ColorCode,
		IsActive:     r.IsActive,
		Descriptions: r.Descriptions,
	}
}

func (r ConcertSaveRequest) toParams() service.SaveConcertParams {
	return service.SaveConcertParams{
		ArtistID:     r.ArtistID,
		ArtistNameEN: r.ArtistNameEN,
		ArtistNameKR: r.ArtistNameKR,
		Type:         repository.ConcertType(r.Type),
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Venue:        r.Venue,
		City:         r.City,
		Country:      r.Country,
		Price:        r.Price,
		Description:  r.Description,
		Memo:         r.Memo,
	}
}
