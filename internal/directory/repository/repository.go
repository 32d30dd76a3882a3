// Package repository: 디렉터리 서비스의 PostgreSQL 레코드 저장소
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository: 디렉터리 DB 리포지토리
type Repository struct {
	db *gorm.DB
}

// New: 새로운 Repository 인스턴스 생성
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AutoMigrate: DB 테이블 스키마 자동 마이그레이션
func (r *Repository) AutoMigrate(ctx context.Context) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	if err := r.db.WithContext(ctx).AutoMigrate(
		&Artist{},
		&ArtistTranslation{},
		&Concert{},
	); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
