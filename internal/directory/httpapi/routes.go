// Package httpapi: 디렉터리 서비스 HTTP API
package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kstage/kstage-go/internal/common/health"
	"github.com/kstage/kstage-go/internal/common/messageprovider"
	"github.com/kstage/kstage-go/internal/common/ptr"
	"github.com/kstage/kstage-go/internal/directory/repository"
	"github.com/kstage/kstage-go/internal/directory/service"
)

const (
	maxBodyBytes     = 1 << 20
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// PublicServices: 공개 API가 의존하는 서비스 묶음
type PublicServices struct {
	Artists  *service.ArtistService
	Concerts *service.ConcertService
	Popular  *service.PopularService
}

// Register: 공개 HTTP API 라우트 등록
func Register(
	mux *http.ServeMux,
	services PublicServices,
	msgProvider *messageprovider.Provider,
	logger *slog.Logger,
) {
	// GET /health - 헬스체크
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, health.Get())
	})

	// GET /api/popular - 인기 아티스트 (활성 상위 10, 순위 오름차순)
	mux.HandleFunc("GET /api/popular", func(w http.ResponseWriter, r *http.Request) {
		artists, err := services.Popular.ListPopular(r.Context())
		if err != nil {
			logger.Error("POPULAR_FAILED", "err", err)
			respondDomainError(w, err, msgProvider)
			return
		}
		respondJSON(w, http.StatusOK, ArtistListResponse{Artists: artists, Total: int64(len(artists))})
	})

	// GET /api/artists - 아티스트 목록
	mux.HandleFunc("GET /api/artists", func(w http.ResponseWriter, r *http.Request) {
		params := repository.ListArtistsParams{
			ActiveOnly: r.URL.Query().Get("active") == "true",
			Category:   repository.ArtistCategory(r.URL.Query().Get("category")),
		}
		params.Limit, params.Offset = parsePage(r)

		artists, total, err := services.Artists.ListArtists(r.Context(), params)
		if err != nil {
			logger.Error("ARTIST_LIST_FAILED", "err", err)
			respondDomainError(w, err, msgProvider)
			return
		}
		respondJSON(w, http.StatusOK, ArtistListResponse{Artists: artists, Total: total})
	})

	// GET /api/artists/{id} - 아티스트 상세 (번역 포함)
	mux.HandleFunc("GET /api/artists/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		artist, err := services.Artists.GetArtist(r.Context(), id)
		if err != nil {
			respondDomainError(w, err, msgProvider)
			return
		}
		respondJSON(w, http.StatusOK, artist)
	})

	// GET /api/artists/{id}/translations - 아티스트 번역 목록
	mux.HandleFunc("GET /api/artists/{id}/translations", func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		translations, err := services.Artists.ListTranslations(r.Context(), id)
		if err != nil {
			respondDomainError(w, err, msgProvider)
			return
		}
		respondJSON(w, http.StatusOK, translations)
	})

	// GET /api/concerts - 공연 목록
	mux.HandleFunc("GET /api/concerts", func(w http.ResponseWriter, r *http.Request) {
		params := repository.ListConcertsParams{
			Type: repository.ConcertType(r.URL.Query().Get("type")),
		}
		if raw := r.URL.Query().Get("artist_id"); raw != "" {
			artistID, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				respondError(w, http.StatusBadRequest, errorCodeInvalidRequest, "invalid artist_id")
				return
			}
			params.ArtistID = ptr.Uint64(artistID)
		}
		params.Limit, params.Offset = parsePage(r)

		concerts, total, err := services.Concerts.ListConcerts(r.Context(), params)
		if err != nil {
			logger.Error("CONCERT_LIST_FAILED", "err", err)
			respondDomainError(w, err, msgProvider)
			return
		}
		respondJSON(w, http.StatusOK, ConcertListResponse{Concerts: concerts, Total: total})
	})

	// GET /api/concerts/{id} - 공연 상세
	mux.HandleFunc("GET /api/concerts/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		concert, err := services.Concerts.GetConcert(r.Context(), id)
		if err != nil {
			respondDomainError(w, err, msgProvider)
			return
		}
		respondJSON(w, http.StatusOK, concert)
	})

	logger.Info("directory_http_api_registered")
}

// parseID: 경로의 {id}를 파싱한다. 실패 시 400 응답 후 false를 반환한다.
func parseID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(w, http.StatusBadRequest, errorCodeInvalidRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func parsePage(r *http.Request) (limit, offset int) {
	limit = defaultPageLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			offset = v
		}
	}
	return limit, offset
}
