package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/kstage/kstage-go/internal/directory/errors"
)

// FindTranslation: 아티스트의 특정 언어 번역을 조회한다.
// 존재하지 않으면 (nil, nil)을 반환해 삽입/갱신 분기를 호출자가 결정하게 한다.
func (r *Repository) FindTranslation(ctx context.Context, artistID uint64, lang string) (*ArtistTranslation, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}

	var translation ArtistTranslation
	err := r.db.WithContext(ctx).
		Where("artist_id = ? AND lang = ?", artistID, lang).
		First(&translation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.StoreError{Operation: "find translation", Err: err}
	}
	return &translation, nil
}

// ListTranslations: 아티스트의 모든 번역을 언어 코드 오름차순으로 반환한다.
func (r *Repository) ListTranslations(ctx context.Context, artistID uint64) ([]ArtistTranslation, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}

	var translations []ArtistTranslation
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("lang ASC").
		Find(&translations).Error
	if err != nil {
		return nil, apperrors.StoreError{Operation: "list translations", Err: err}
	}
	return translations, nil
}

// InsertTranslation: 새 언어 번역 행을 생성한다.
// (artist_id, lang) 유니크 제약에 걸리면 ConflictError를 반환한다.
func (r *Repository) InsertTranslation(ctx context.Context, translation *ArtistTranslation) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}

	if err := r.db.WithContext(ctx).Create(translation).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ConflictError{
				Entity: "artist_translation",
				Detail: fmt.Sprintf("lang %s already exists for artist %d", translation.Lang, translation.ArtistID),
				Err:    err,
			}
		}
		return apperrors.StoreError{Operation: "insert translation", Err: err}
	}
	return nil
}

// UpdateTranslationDescription: 기존 번역 행의 소개문만 교체한다.
// 행 ID와 created_at은 유지되고 updated_at만 갱신된다.
func (r *Repository) UpdateTranslationDescription(ctx context.Context, id uint64, description string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}

	result := r.db.WithContext(ctx).Model(&ArtistTranslation{}).
		Where("id = ?", id).
		Update("description", description)
	if result.Error != nil {
		return apperrors.StoreError{Operation: "update translation", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundError{Entity: "artist_translation", ID: id}
	}
	return nil
}

// DeleteTranslation: 아티스트의 특정 언어 번역을 삭제한다.
func (r *Repository) DeleteTranslation(ctx context.Context, artistID uint64, lang string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}

	result := r.db.WithContext(ctx).
		Where("artist_id = ? AND lang = ?", artistID, lang).
		Delete(&ArtistTranslation{})
	if result.Error != nil {
		return apperrors.StoreError{Operation: "delete translation", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundError{Entity: "artist_translation", Name: fmt.Sprintf("artist=%d lang=%s", artistID, lang)}
	}
	return nil
}
