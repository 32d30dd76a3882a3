package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/kstage/kstage-go/internal/directory/config"
	apperrors "github.com/kstage/kstage-go/internal/directory/errors"
	"github.com/kstage/kstage-go/internal/directory/repository"
)

// TranslationSynchronizer: 아티스트 소개문 번역을 언어별로 저장소와 맞춘다.
//
// 입력은 언어 코드 → 소개문 매핑이며, 언어별로 독립적으로 처리한다.
//   - 공백뿐인 소개문은 건너뛴다 (기존 행 삭제 아님).
//   - 해당 언어 행이 있으면 소개문만 갱신하고, 없으면 새 행을 만든다.
//   - 한 언어의 실패는 다른 언어나 호출자의 아티스트 저장을 막지 않는다.
type TranslationSynchronizer struct {
	repo   *repository.Repository
	logger *slog.Logger
}

// NewTranslationSynchronizer: 새로운 TranslationSynchronizer 인스턴스 생성
func NewTranslationSynchronizer(repo *repository.Repository, logger *slog.Logger) *TranslationSynchronizer {
	return &TranslationSynchronizer{repo: repo, logger: logger}
}

// LangFailure: 특정 언어 처리 실패 내역
type LangFailure struct {
	Lang string `json:"lang"`
	Err  error  `json:"-"`

	Message string `json:"message"`
}

// ReconcileResult: 언어별 반영 결과와 실패 목록
type ReconcileResult struct {
	Translations map[string]repository.ArtistTranslation
	Failures     []LangFailure
}

// Reconcile: 요청된 언어별 소개문을 저장소에 반영한다.
//
// 반환되는 Translations는 기존 행 위에 이번 반영 결과를 덮어쓴 병합 뷰이다.
// 기존 행 목록을 읽지 못하면 쓰기 전에 StoreError로 즉시 중단한다.
// 개별 언어의 쓰기 실패는 Failures에 수집될 뿐 에러로 반환되지 않는다.
func (s *TranslationSynchronizer) Reconcile(
	ctx context.Context,
	artistID uint64,
	descriptions map[string]string,
) (*ReconcileResult, error) {
	existing, err := s.repo.ListTranslations(ctx, artistID)
	if err != nil {
		return nil, err
	}

	result := &ReconcileResult{
		Translations: make(map[string]repository.ArtistTranslation, len(existing)),
	}
	for _, row := range existing {
		result.Translations[row.Lang] = row
	}

	for lang, description := range descriptions {
		if strings.TrimSpace(description) == "" {
			continue
		}

		if !config.SupportedLangs[lang] {
			s.recordFailure(result, lang, apperrors.ValidationError{
				Field:   "lang",
				Message: "unsupported language code: " + lang,
			})
			continue
		}

		row, err := s.syncLang(ctx, artistID, lang, description)
		if err != nil {
			s.recordFailure(result, lang, err)
			continue
		}
		result.Translations[lang] = *row
	}

	return result, nil
}

// syncLang: 단일 언어의 소개문을 갱신 또는 삽입한다.
func (s *TranslationSynchronizer) syncLang(
	ctx context.Context,
	artistID uint64,
	lang string,
	description string,
) (*repository.ArtistTranslation, error) {
	existing, err := s.repo.FindTranslation(ctx, artistID, lang)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.repo.UpdateTranslationDescription(ctx, existing.ID, description); err != nil {
			return nil, err
		}
		updated, err := s.repo.FindTranslation(ctx, artistID, lang)
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	row := &repository.ArtistTranslation{
		ArtistID:    artistID,
		Lang:        lang,
		Description: description,
	}
	if err := s.repo.InsertTranslation(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *TranslationSynchronizer) recordFailure(result *ReconcileResult, lang string, err error) {
	s.logger.Warn("translation_sync_failed", "lang", lang, "error", err)
	result.Failures = append(result.Failures, LangFailure{
		Lang:    lang,
		Err:     err,
		Message: err.Error(),
	})
}
