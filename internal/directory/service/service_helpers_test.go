package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/kstage/kstage-go/internal/directory/repository"
)

func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()
	repo, _ := newTestRepoWithDB(t)
	return repo
}

// newTestRepoWithDB: 테스트가 트리거 등으로 저장소 동작을 조작할 수 있도록
// gorm 핸들도 함께 반환한다.
func newTestRepoWithDB(t *testing.T) (*repository.Repository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repo := repository.New(db)
	if err := repo.AutoMigrate(context.Background()); err != nil {
		t.Fatal(err)
	}
	return repo, db
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedArtist(t *testing.T, repo *repository.Repository, name string, rank int) *repository.Artist {
	t.Helper()

	artist := &repository.Artist{
		Rank:         rank,
		ArtistNameEN: name,
		Category:     repository.CategoryGirlGroup,
		IsActive:     true,
	}
	if err := repo.CreateArtist(context.Background(), artist); err != nil {
		t.Fatalf("seed artist %s: %v", name, err)
	}
	return artist
}
