package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kstage/kstage-go/internal/directory/config"
	apperrors "github.com/kstage/kstage-go/internal/directory/errors"
	"github.com/kstage/kstage-go/internal/directory/redis"
	"github.com/kstage/kstage-go/internal/directory/repository"
)

// ArtistService: 아티스트 CRUD와 번역 반영을 담당한다.
//
// 저장 요청에 번역이 포함되면 아티스트 쓰기를 먼저 커밋하고,
// 번역 반영 실패는 결과의 TranslationFailures로만 보고한다.
type ArtistService struct {
	repo         *repository.Repository
	translations *TranslationSynchronizer
	popularCache *redis.PopularStore // nil이면 캐시 미사용
	logger       *slog.Logger
}

// NewArtistService: 새로운 ArtistService 인스턴스 생성
func NewArtistService(
	repo *repository.Repository,
	translations *TranslationSynchronizer,
	popularCache *redis.PopularStore,
	logger *slog.Logger,
) *ArtistService {
	return &ArtistService{
		repo:         repo,
		translations: translations,
		popularCache: popularCache,
		logger:       logger,
	}
}

// SaveArtistParams: 아티스트 생성/수정 공통 파라미터
type SaveArtistParams struct {
	Rank         int
	ArtistNameEN string
	ArtistNameKR string
	Category     repository.ArtistCategory
	FanCount     string
	Agency       string
	FandomName   string
	ColorCode    string
	IsActive     *bool // nil이면 생성 시 true, 수정 시 유지

	// Descriptions: 언어 코드 → 소개문. 아티스트 커밋 후 반영된다.
	Descriptions map[string]string
}

// SaveArtistResult: 저장된 아티스트와 번역 실패 목록
type SaveArtistResult struct {
	Artist              *repository.Artist
	TranslationFailures []LangFailure
}

// CreateArtist: 아티스트를 생성하고 번역을 반영한다.
func (s *ArtistService) CreateArtist(ctx context.Context, p SaveArtistParams) (*SaveArtistResult, error) {
	if err := validateSaveArtistParams(p, true); err != nil {
		return nil, err
	}

	isActive := true
	if p.IsActive != nil {
		isActive = *p.IsActive
	}

	artist := &repository.Artist{
		Rank:         p.Rank,
		ArtistNameEN: strings.TrimSpace(p.ArtistNameEN),
		ArtistNameKR: strings.TrimSpace(p.ArtistNameKR),
		Category:     p.Category,
		FanCount:     p.FanCount,
		Agency:       p.Agency,
		FandomName:   p.FandomName,
		ColorCode:    p.ColorCode,
		IsActive:     isActive,
	}
	if err := s.repo.CreateArtist(ctx, artist); err != nil {
		return nil, err
	}

	failures := s.reconcileAfterCommit(ctx, artist.ID, p.Descriptions)
	s.invalidatePopular(ctx)

	return &SaveArtistResult{Artist: artist, TranslationFailures: failures}, nil
}

// UpdateArtist: 아티스트 프로필을 수정하고 번역을 반영한다.
// 순위 변경은 이 경로로 받지 않는다. 순위는 RankSequencer.Swap으로만 바뀐다.
func (s *ArtistService) UpdateArtist(ctx context.Context, id uint64, p SaveArtistParams) (*SaveArtistResult, error) {
	if err := validateSaveArtistParams(p, false); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"artist_name_en": strings.TrimSpace(p.ArtistNameEN),
		"artist_name_kr": strings.TrimSpace(p.ArtistNameKR),
		"category":       p.Category,
		"fan_count":      p.FanCount,
		"agency":         p.Agency,
		"fandom_name":    p.FandomName,
		"color_code":     p.ColorCode,
	}
	if p.IsActive != nil {
		fields["is_active"] = *p.IsActive
	}

	if err := s.repo.UpdateArtistFields(ctx, id, fields); err != nil {
		return nil, err
	}

	failures := s.reconcileAfterCommit(ctx, id, p.Descriptions)
	s.invalidatePopular(ctx)

	artist, err := s.repo.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	return &SaveArtistResult{Artist: artist, TranslationFailures: failures}, nil
}

// GetArtist: 아티스트 상세 조회 (번역 포함)
func (s *ArtistService) GetArtist(ctx context.Context, id uint64) (*repository.Artist, error) {
	return s.repo.GetArtist(ctx, id)
}

// ListArtists: 아티스트 목록 조회
func (s *ArtistService) ListArtists(ctx context.Context, p repository.ListArtistsParams) ([]repository.Artist, int64, error) {
	return s.repo.ListArtists(ctx, p)
}

// DeleteArtist: 아티스트와 번역을 삭제하고 공연의 참조를 끊는다.
func (s *ArtistService) DeleteArtist(ctx context.Context, id uint64) error {
	if err := s.repo.DetachArtistFromConcerts(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteArtist(ctx, id); err != nil {
		return err
	}
	s.invalidatePopular(ctx)
	return nil
}

// ListTranslations: 아티스트의 번역 목록 조회
func (s *ArtistService) ListTranslations(ctx context.Context, artistID uint64) ([]repository.ArtistTranslation, error) {
	if _, err := s.repo.GetArtist(ctx, artistID); err != nil {
		return nil, err
	}
	return s.repo.ListTranslations(ctx, artistID)
}

// UpdateTranslation: 아티스트의 특정 언어 소개문을 직접 교체한다.
// 기존 행이 없으면 NotFoundError다. 새 언어 추가는 저장 경로의 번역 반영으로만 이뤄진다.
func (s *ArtistService) UpdateTranslation(
	ctx context.Context,
	artistID uint64,
	lang string,
	description string,
) (*repository.ArtistTranslation, error) {
	if !config.SupportedLangs[lang] {
		return nil, apperrors.ValidationError{Field: "lang", Message: "unsupported language code: " + lang}
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.ValidationError{Field: "description", Message: "required"}
	}

	row, err := s.repo.FindTranslation(ctx, artistID, lang)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperrors.NotFoundError{
			Entity: "artist_translation",
			Name:   fmt.Sprintf("artist=%d lang=%s", artistID, lang),
		}
	}

	if err := s.repo.UpdateTranslationDescription(ctx, row.ID, description); err != nil {
		return nil, err
	}
	return s.repo.FindTranslation(ctx, artistID, lang)
}

// DeleteTranslation: 아티스트의 특정 언어 번역 삭제
func (s *ArtistService) DeleteTranslation(ctx context.Context, artistID uint64, lang string) error {
	if !config.SupportedLangs[lang] {
		return apperrors.ValidationError{Field: "lang", Message: "unsupported language code: " + lang}
	}
	return s.repo.DeleteTranslation(ctx, artistID, lang)
}

// reconcileAfterCommit: 커밋된 아티스트에 번역을 반영한다.
// 번역 목록 조회 자체가 실패해도 아티스트 저장은 성공으로 유지하고 실패만 기록한다.
func (s *ArtistService) reconcileAfterCommit(
	ctx context.Context,
	artistID uint64,
	descriptions map[string]string,
) []LangFailure {
	if len(descriptions) == 0 {
		return nil
	}

	result, err := s.translations.Reconcile(ctx, artistID, descriptions)
	if err != nil {
		s.logger.Warn("translation_reconcile_failed", "artist_id", artistID, "error", err)
		failures := make([]LangFailure, 0, len(descriptions))
		for lang := range descriptions {
			failures = append(failures, LangFailure{Lang: lang, Err: err, Message: err.Error()})
		}
		return failures
	}
	return result.Failures
}

func (s *ArtistService) invalidatePopular(ctx context.Context) {
	if s.popularCache == nil {
		return
	}
	if err := s.popularCache.Invalidate(ctx); err != nil {
		s.logger.Warn("popular_cache_invalidate_failed", "error", err)
	}
}

func validateSaveArtistParams(p SaveArtistParams, isCreate bool) error {
	if strings.TrimSpace(p.ArtistNameEN) == "" {
		return apperrors.ValidationError{Field: "artist_name_en", Message: "required"}
	}
	if isCreate && p.Rank <= 0 {
		return apperrors.ValidationError{Field: "rank", Message: "must be positive"}
	}
	if p.Category != "" && !repository.ValidCategory(p.Category) {
		return apperrors.ValidationError{Field: "category", Message: "unknown category: " + string(p.Category)}
	}
	return nil
}
