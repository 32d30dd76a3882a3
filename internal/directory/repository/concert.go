package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/kstage/kstage-go/internal/directory/errors"
)

// CreateConcert: 공연을 생성한다.
func (r *Repository) CreateConcert(ctx context.Context, concert *Concert) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	if err := r.db.WithContext(ctx).Create(concert).Error; err != nil {
		return apperrors.StoreError{Operation: "create concert", Err: err}
	}
	return nil
}

// GetConcert: ID로 공연을 조회한다.
func (r *Repository) GetConcert(ctx context.Context, id uint64) (*Concert, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	var concert Concert
	if err := r.db.WithContext(ctx).First(&concert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundError{Entity: "concert", ID: id}
		}
		return nil, apperrors.StoreError{Operation: "get concert", Err: err}
	}
	return &concert, nil
}

// ListConcertsParams: 공연 목록 조회 파라미터
type ListConcertsParams struct {
	ArtistID *uint64     // nil이면 전체
	Type     ConcertType // 비어 있으면 전체
	Limit    int
	Offset   int
}

// ListConcerts: 시작일 내림차순으로 공연 목록과 전체 건수를 반환한다.
func (r *Repository) ListConcerts(ctx context.Context, p ListConcertsParams) ([]Concert, int64, error) {
	if r == nil || r.db == nil {
		return nil, 0, fmt.Errorf("db is nil")
	}

	query := r.db.WithContext(ctx).Model(&Concert{})
	if p.ArtistID != nil {
		query = query.Where("artist_id = ?", *p.ArtistID)
	}
	if p.Type != "" {
		query = query.Where("type = ?", p.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.StoreError{Operation: "count concerts", Err: err}
	}

	var concerts []Concert
	listQuery := query.Order("start_date DESC")
	if p.Limit > 0 {
		listQuery = listQuery.Limit(p.Limit).Offset(p.Offset)
	}
	if err := listQuery.Find(&concerts).Error; err != nil {
		return nil, 0, apperrors.StoreError{Operation: "list concerts", Err: err}
	}

	return concerts, total, nil
}

// UpdateConcertFields: 공연 필드를 갱신한다.
func (r *Repository) UpdateConcertFields(ctx context.Context, id uint64, fields map[string]any) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}

	result := r.db.WithContext(ctx).Model(&Concert{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return apperrors.StoreError{Operation: "update concert", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundError{Entity: "concert", ID: id}
	}
	return nil
}

// DeleteConcert: 공연을 삭제한다.
func (r *Repository) DeleteConcert(ctx context.Context, id uint64) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}

	result := r.db.WithContext(ctx).Delete(&Concert{}, id)
	if result.Error != nil {
		return apperrors.StoreError{Operation: "delete concert", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundError{Entity: "concert", ID: id}
	}
	return nil
}

// DetachArtistFromConcerts: 아티스트 삭제 시 공연의 아티스트 참조를 끊는다.
// 비정규화된 표시 이름은 남겨 목록 표시가 유지되게 한다.
func (r *Repository) DetachArtistFromConcerts(ctx context.Context, artistID uint64) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}

	err := r.db.WithContext(ctx).Model(&Concert{}).
		Where("artist_id = ?", artistID).
		Update("artist_id", nil).Error
	if err != nil {
		return apperrors.StoreError{Operation: "detach artist from concerts", Err: err}
	}
	return nil
}
