package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/kstage/kstage-go/internal/directory/errors"
	"github.com/kstage/kstage-go/internal/directory/repository"
)

// ConcertService: 공연 CRUD를 담당한다.
// 아티스트 참조가 있으면 존재를 확인하고 표시 이름을 비정규화해 복사한다.
type ConcertService struct {
	repo   *repository.Repository
	logger *slog.Logger
}

// NewConcertService: 새로운 ConcertService 인스턴스 생성
func NewConcertService(repo *repository.Repository, logger *slog.Logger) *ConcertService {
	return &ConcertService{repo: repo, logger: logger}
}

// SaveConcertParams: 공연 생성/수정 공통 파라미터
type SaveConcertParams struct {
	ArtistID     *uint64
	ArtistNameEN string // ArtistID가 없을 때 직접 입력
	ArtistNameKR string
	Type         repository.ConcertType
	StartDate    time.Time
	EndDate      *time.Time
	Venue        string
	City         string
	Country      string
	Price        string
	Description  string
	Memo         string
}

// CreateConcert: 공연을 생성한다.
func (s *ConcertService) CreateConcert(ctx context.Context, p SaveConcertParams) (*repository.Concert, error) {
	if err := validateSaveConcertParams(p); err != nil {
		return nil, err
	}

	nameEN, nameKR, err := s.resolveArtistNames(ctx, p)
	if err != nil {
		return nil, err
	}

	concertType := p.Type
	if concertType == "" {
		concertType = repository.ConcertTypeConcert
	}

	concert := &repository.Concert{
		ArtistID:     p.ArtistID,
		ArtistNameEN: nameEN,
		ArtistNameKR: nameKR,
		Type:         concertType,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Venue:        p.Venue,
		City:         p.City,
		Country:      p.Country,
		Price:        p.Price,
		Description:  p.Description,
		Memo:         p.Memo,
	}
	if err := s.repo.CreateConcert(ctx, concert); err != nil {
		return nil, err
	}
	return concert, nil
}

// UpdateConcert: 공연을 수정한다.
func (s *ConcertService) UpdateConcert(ctx context.Context, id uint64, p SaveConcertParams) (*repository.Concert, error) {
	if err := validateSaveConcertParams(p); err != nil {
		return nil, err
	}

	nameEN, nameKR, err := s.resolveArtistNames(ctx, p)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"artist_id":      p.ArtistID,
		"artist_name_en": nameEN,
		"artist_name_kr": nameKR,
		"start_date":     p.StartDate,
		"end_date":       p.EndDate,
		"venue":          p.Venue,
		"city":           p.City,
		"country":        p.Country,
		"price":          p.Price,
		"description":    p.Description,
		"memo":           p.Memo,
	}
	if p.Type != "" {
		fields["type"] = p.Type
	}

	if err := s.repo.UpdateConcertFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.GetConcert(ctx, id)
}

// GetConcert: 공연 상세 조회
func (s *ConcertService) GetConcert(ctx context.Context, id uint64) (*repository.Concert, error) {
	return s.repo.GetConcert(ctx, id)
}

// ListConcerts: 공연 목록 조회
func (s *ConcertService) ListConcerts(ctx context.Context, p repository.ListConcertsParams) ([]repository.Concert, int64, error) {
	return s.repo.ListConcerts(ctx, p)
}

// DeleteConcert: 공연 삭제
func (s *ConcertService) DeleteConcert(ctx context.Context, id uint64) error {
	return s.repo.DeleteConcert(ctx, id)
}

// resolveArtistNames: 아티스트 참조가 있으면 레코드의 이름을 복사하고,
// 없으면 요청의 이름을 그대로 사용한다.
func (s *ConcertService) resolveArtistNames(ctx context.Context, p SaveConcertParams) (string, string, error) {
	if p.ArtistID == nil {
		return strings.TrimSpace(p.ArtistNameEN), strings.TrimSpace(p.ArtistNameKR), nil
	}

	artist, err := s.repo.GetArtist(ctx, *p.ArtistID)
	if err != nil {
		return "", "", err
	}
	return artist.ArtistNameEN, artist.ArtistNameKR, nil
}

func validateSaveConcertParams(p SaveConcertParams) error {
	if p.ArtistID == nil && strings.TrimSpace(p.ArtistNameEN) == "" {
		return apperrors.ValidationError{Field: "artist_name_en", Message: "artist_id or artist_name_en required"}
	}
	if p.StartDate.IsZero() {
		return apperrors.ValidationError{Field: "start_date", Message: "required"}
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return apperrors.ValidationError{Field: "end_date", Message: "must not be before start_date"}
	}
	if p.Type != "" && !repository.ValidConcertType(p.Type) {
		return apperrors.ValidationError{Field: "type", Message: "unknown concert type: " + string(p.Type)}
	}
	return nil
}
