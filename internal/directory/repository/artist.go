package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/kstage/kstage-go/internal/directory/errors"
)

// CreateArtist: 아티스트를 생성한다. 순위가 이미 사용 중이면 ConflictError를 반환한다.
func (r *Repository) CreateArtist(ctx context.Context, artist *Artist) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	if err := r.db.WithContext(ctx).Create(artist).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ConflictError{
				Entity: "artist",
				Detail: fmt.Sprintf("rank %d already taken", artist.Rank),
				Err:    err,
			}
		}
		return apperrors.StoreError{Operation: "create artist", Err: err}
	}
	return nil
}

// GetArtist: ID로 아티스트를 조회한다. 번역을 함께 로드한다.
func (r *Repository) GetArtist(ctx context.Context, id uint64) (*Artist, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	var artist Artist
	err := r.db.WithContext(ctx).
		Preload("Translations", func(db *gorm.DB) *gorm.DB { return db.Order("lang ASC") }).
		First(&artist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundError{Entity: "artist", ID: id}
		}
		return nil, apperrors.StoreError{Operation: "get artist", Err: err}
	}
	return &artist, nil
}

// ListArtistsParams: 아티스트 목록 조회 파라미터
type ListArtistsParams struct {
	ActiveOnly bool
	Category   ArtistCategory // 비어 있으면 전체
	Limit      int
	Offset     int
}

// ListArtists: 순위 오름차순으로 아티스트 목록과 전체 건수를 반환한다.
func (r *Repository) ListArtists(ctx context.Context, p ListArtistsParams) ([]Artist, int64, error) {
	if r == nil || r.db == nil {
		return nil, 0, fmt.Errorf("db is nil")
	}

	query := r.db.WithContext(ctx).Model(&Artist{})
	if p.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if p.Category != "" {
		query = query.Where("category = ?", p.Category)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.StoreError{Operation: "count artists", Err: err}
	}

	var artists []Artist
	listQuery := query.Order("rank ASC")
	if p.Limit > 0 {
		listQuery = listQuery.Limit(p.Limit).Offset(p.Offset)
	}
	if err := listQuery.Preload("Translations").Find(&artists).Error; err != nil {
		return nil, 0, apperrors.StoreError{Operation: "list artists", Err: err}
	}

	return artists, total, nil
}

// ListTopActive: 활성 아티스트를 순위 오름차순으로 limit개까지 반환한다.
func (r *Repository) ListTopActive(ctx context.Context, limit int) ([]Artist, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	var artists []Artist
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("rank ASC").
		Limit(limit).
		Find(&artists).Error
	if err != nil {
		return nil, apperrors.StoreError{Operation: "list top active artists", Err: err}
	}
	return artists, nil
}

// UpdateArtistFields: 순위와 버전을 제외한 프로필 필드를 갱신한다.
func (r *Repository) UpdateArtistFields(ctx context.Context, id uint64, fields map[string]any) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}

	result := r.db.WithContext(ctx).Model(&Artist{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperrors.ConflictError{Entity: "artist", Detail: "unique constraint violated", Err: result.Error}
		}
		return apperrors.StoreError{Operation: "update artist", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundError{Entity: "artist", ID: id}
	}
	return nil
}

// MaxRank: 현재 가장 큰 순위 값을 반환한다. 아티스트가 없으면 0이다.
func (r *Repository) MaxRank(ctx context.Context) (int, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("db is nil")
	}
	var maxRank sql.NullInt64
	err := r.db.WithContext(ctx).Model(&Artist{}).Select("MAX(rank)").Scan(&maxRank).Error
	if err != nil {
		return 0, apperrors.StoreError{Operation: "max rank", Err: err}
	}
	if !maxRank.Valid {
		return 0, nil
	}
	return int(maxRank.Int64), nil
}

// UpdateArtistRank: 버전 일치 조건으로 순위를 갱신한다.
// 다른 요청이 먼저 레코드를 수정해 버전이 달라졌으면 ConflictError를 반환한다.
func (r *Repository) UpdateArtistRank(ctx context.Context, id uint64, newRank int, expectedVersion int64) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}

	result := r.db.WithContext(ctx).Model(&Artist{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]any{
			"rank":    newRank,
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperrors.ConflictError{
				Entity: "artist",
				Detail: fmt.Sprintf("rank %d already taken", newRank),
				Err:    result.Error,
			}
		}
		return apperrors.StoreError{Operation: "update artist rank", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return apperrors.ConflictError{
			Entity: "artist",
			Detail: fmt.Sprintf("artist %d modified concurrently or missing", id),
		}
	}
	return nil
}

// DeleteArtist: 아티스트와 소속 번역을 트랜잭션으로 함께 삭제한다.
func (r *Repository) DeleteArtist(ctx context.Context, id uint64) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artist_id = ?", id).Delete(&ArtistTranslation{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Artist{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFoundError{Entity: "artist", ID: id}
		}
		return nil
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return apperrors.StoreError{Operation: "delete artist", Err: err}
	}
	return nil
}
