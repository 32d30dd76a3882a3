package httpapi

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	json "github.com/goccy/go-json"
	"gorm.io/gorm"

	"github.com/kstage/kstage-go/internal/common/messageprovider"
	dassets "github.com/kstage/kstage-go/internal/directory/assets"
	dauth "github.com/kstage/kstage-go/internal/directory/auth"
	"github.com/kstage/kstage-go/internal/directory/repository"
	"github.com/kstage/kstage-go/internal/directory/service"
)

const testAdminPassword = "test-admin-password"

func newTestServer(t *testing.T) (*httptest.Server, *repository.Repository) {
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
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := repository.New(db)
	if err := repo.AutoMigrate(context.Background()); err != nil {
		t.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	msgProvider, err := messageprovider.NewFromYAML(dassets.ServiceMessagesYAML)
	if err != nil {
		t.Fatal(err)
	}

	digest := sha256.Sum256([]byte(testAdminPassword))
	verifier := dauth.NewVerifier(hex.EncodeToString(digest[:]))

	translationSync := service.NewTranslationSynchronizer(repo, logger)
	artistService := service.NewArtistService(repo, translationSync, nil, logger)
	concertService := service.NewConcertService(repo, logger)
	popularService := service.NewPopularService(repo, nil, logger)
	rankSequencer := service.NewRankSequencer(repo, nil, logger)

	mux := http.NewServeMux()
	Register(mux, PublicServices{
		Artists:  artistService,
		Concerts: concertService,
		Popular:  popularService,
	}, msgProvider, logger)
	RegisterAdmin(mux, AdminServices{
		Artists:   artistService,
		Concerts:  concertService,
		Sequencer: rankSequencer,
	}, verifier, msgProvider, logger)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, repo
}

func doJSON(t *testing.T, method, url string, body any, admin bool) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatal(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set(headerAdminPassword, testAdminPassword)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestAdminGuardRejectsWithoutPassword(t *testing.T) {
	server, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/artists", ArtistSaveRequest{
		Rank:         1,
		ArtistNameEN: "NewJeans",
	}, false)

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAdminAuthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	t.Run("CorrectPassword", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/admin/auth", AuthRequest{Password: testAdminPassword}, false)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		body := decodeBody[AuthResponse](t, resp)
		if !body.Success {
			t.Error("expected success")
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/admin/auth", AuthRequest{Password: "nope"}, false)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", resp.StatusCode)
		}
	})
}

func TestArtistLifecycleOverHTTP(t *testing.T) {
	server, _ := newTestServer(t)

	// 생성 (번역 포함)
	resp := doJSON(t, http.MethodPost, server.URL+"/api/artists", ArtistSaveRequest{
		Rank:         1,
		ArtistNameEN: "NewJeans",
		ArtistNameKR: "뉴진스",
		Category:     "GIRL_GROUP",
		Descriptions: map[string]string{"ko": "뉴진스 소개", "en": "About NewJeans"},
	}, true)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	created := decodeBody[ArtistSaveResponse](t, resp)
	if len(created.TranslationFailures) != 0 {
		t.Fatalf("unexpected translation failures: %+v", created.TranslationFailures)
	}

	// 조회
	resp = doJSON(t, http.MethodGet, server.URL+"/api/artists/1", nil, false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, want 200", resp.StatusCode)
	}
	artist := decodeBody[repository.Artist](t, resp)
	if artist.ArtistNameEN != "NewJeans" || len(artist.Translations) != 2 {
		t.Fatalf("unexpected artist payload: %+v", artist)
	}

	// 중복 순위 생성은 409
	resp = doJSON(t, http.MethodPost, server.URL+"/api/artists", ArtistSaveRequest{
		Rank:         1,
		ArtistNameEN: "IVE",
	}, true)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate rank status = %d, want 409", resp.StatusCode)
	}

	// 존재하지 않는 아티스트는 404
	resp = doJSON(t, http.MethodGet, server.URL+"/api/artists/999", nil, false)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing artist status = %d, want 404", resp.StatusCode)
	}

	// 삭제
	resp = doJSON(t, http.MethodDelete, server.URL+"/api/artists/1", nil, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", resp.StatusCode)
	}
}

func TestTranslationUpdateOverHTTP(t *testing.T) {
	server, repo := newTestServer(t)
	ctx := context.Background()

	resp := doJSON(t, http.MethodPost, server.URL+"/api/artists", ArtistSaveRequest{
		Rank:         1,
		ArtistNameEN: "IVE",
		Descriptions: map[string]string{"ko": "아이브 소개"},
	}, true)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	created := decodeBody[ArtistSaveResponse](t, resp)

	before, err := repo.FindTranslation(ctx, created.Artist.ID, "ko")
	if err != nil || before == nil {
		t.Fatalf("find ko translation: %v", err)
	}

	// 개별 번역 수정
	resp = doJSON(t, http.MethodPut, server.URL+"/api/artists/1/translations/ko",
		TranslationUpdateRequest{Description: "아이브 새 소개"}, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, want 200", resp.StatusCode)
	}
	row := decodeBody[repository.ArtistTranslation](t, resp)
	if row.Description != "아이브 새 소개" {
		t.Errorf("description not replaced: %q", row.Description)
	}
	if row.ID != before.ID {
		t.Errorf("row replaced instead of updated: id %d -> %d", before.ID, row.ID)
	}

	// 행이 없는 언어는 404
	resp = doJSON(t, http.MethodPut, server.URL+"/api/artists/1/translations/en",
		TranslationUpdateRequest{Description: "About IVE"}, true)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing row status = %d, want 404", resp.StatusCode)
	}

	// 운영자 헤더 없이는 401
	resp = doJSON(t, http.MethodPut, server.URL+"/api/artists/1/translations/ko",
		TranslationUpdateRequest{Description: "unauthorized"}, false)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("guard status = %d, want 401", resp.StatusCode)
	}
}

func TestRankSwapOverHTTP(t *testing.T) {
	server, repo := newTestServer(t)
	ctx := context.Background()

	artistX := &repository.Artist{Rank: 3, ArtistNameEN: "X", IsActive: true}
	artistY := &repository.Artist{Rank: 7, ArtistNameEN: "Y", IsActive: true}
	if err := repo.CreateArtist(ctx, artistX); err != nil {
		t.Fatal(err)
	}
	if err := repo.CreateArtist(ctx, artistY); err != nil {
		t.Fatal(err)
	}

	resp := doJSON(t, http.MethodPost, server.URL+"/api/artists/rank-swap", RankSwapRequest{
		ArtistAID: artistX.ID,
		ArtistBID: artistY.ID,
	}, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("swap status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody[RankSwapResponse](t, resp)
	if body.Result.RankA != 7 || body.Result.RankB != 3 {
		t.Fatalf("unexpected swap result: %+v", body.Result)
	}

	// 자기 자신과의 교환은 400
	resp = doJSON(t, http.MethodPost, server.URL+"/api/artists/rank-swap", RankSwapRequest{
		ArtistAID: artistX.ID,
		ArtistBID: artistX.ID,
	}, true)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("self swap status = %d, want 400", resp.StatusCode)
	}
}

func TestPopularOverHTTP(t *testing.T) {
	server, repo := newTestServer(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		artist := &repository.Artist{Rank: i, ArtistNameEN: "A", IsActive: i != 2}
		if err := repo.CreateArtist(ctx, artist); err != nil {
			t.Fatal(err)
		}
	}

	resp := doJSON(t, http.MethodGet, server.URL+"/api/popular", nil, false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("popular status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody[ArtistListResponse](t, resp)
	if body.Total != 2 {
		t.Fatalf("popular total = %d, want 2 (inactive excluded)", body.Total)
	}
}
