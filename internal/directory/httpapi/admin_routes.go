package httpapi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/kstage/kstage-go/internal/common/messageprovider"
	"github.com/kstage/kstage-go/internal/directory/auth"
	dmessages "github.com/kstage/kstage-go/internal/directory/messages"
	"github.com/kstage/kstage-go/internal/directory/service"
)

// 운영자 패스워드 헤더. 인증 엔드포인트를 제외한 모든 쓰기 경로에 필요하다.
const headerAdminPassword = "X-Admin-Password"

// AdminServices: 운영자 API가 의존하는 서비스 묶음
type AdminServices struct {
	Artists   *service.ArtistService
	Concerts  *service.ConcertService
	Sequencer *service.RankSequencer
}

// RegisterAdmin: 운영자 HTTP API 라우트 등록
func RegisterAdmin(
	mux *http.ServeMux,
	services AdminServices,
	verifier *auth.Verifier,
	msgProvider *messageprovider.Provider,
	logger *slog.Logger,
) {
	guard := func(next http.HandlerFunc) http.HandlerFunc {
		return requireAdmin(verifier, msgProvider, logger, next)
	}

	// POST /api/admin/auth - 운영자 패스워드 검증
	mux.HandleFunc("POST /api/admin/auth", func(w http.ResponseWriter, r *http.Request) {
		var req AuthRequest
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, errorCodeInvalidRequest, msgProvider.Get(dmessages.ErrorInvalidRequest))
			return
		}

		if !verifier.Verify(req.Password) {
			logger.Warn("ADMIN_AUTH_FAILED", "remote", r.RemoteAddr)
			respondJSON(w, http.StatusUnauthorized, AuthResponse{
				Success: false,
				Message: msgProvider.Get(dmessages.AuthInvalidPassword),
			})
			return
		}

		respondJSON(w, http.StatusOK, AuthResponse{
			Success: true,
			Message: msgProvider.Get(dmessages.AuthSuccess),
		})
	})

	// POST /api/artists - 아티스트 생성
	mux.HandleFunc("POST /api/artists", guard(func(w http.ResponseWriter, r *http.Request) {
		var req ArtistSaveRequest
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, errorCodeInvalidRequest, msgProvider.Get(dmessages.ErrorInvalidRequest))
			return
		}

		start := time.Now()
		result, err := services.Artists.CreateArtist(r.Context(), req.toParams())
		if err != nil {
			logger.Error("ARTIST_CREATE_FAILED", "err", err, "duration", time.Since(start).Milliseconds())
			respondDomainError(w, err, msgProvider)
			return
		}

		logger.Info("ARTIST_CREATE_SUCCESS", "artistId", result.Artist.ID, "duration", time.Since(start).Milliseconds())
		respondJSON(w, http.StatusCreated, ArtistSaveResponse{
			Artist:              result.Artist,
			TranslationFailures: toTranslationFailures(result.TranslationFailures),
		})
	}))

	// PUT /api/artists/{id} - 아티스트 수정
	mux.HandleFunc("PUT /api/artists/{id}", guard(func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req ArtistSaveRequest
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, errorCodeInvalidRequest, msgProvider.Get(dmessages.ErrorInvalidRequest))
			return
		}

		result, err := services.Artists.UpdateArtist(r.Context(), id, req.toParams())
		if err != nil {
			respondDomainError(w, err, msgProvider)
			return
		}

		logger.Info("ARTIST_UPDATE_SUCCESS", "artistId", id)
		respondJSON(w, http.StatusOK, ArtistSaveResponse{
			Artist:              result.Artist,
			TranslationFailures: toTranslationFailures(result.TranslationFailures),
		})
	}))

	// DELETE /api/artists/{id} - 아티스트 삭제 (번역 동반 삭제, 공연 참조 해제)
	mux.HandleFunc("DELETE /api/artists/{id}", guard(func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		if err := services.Artists.DeleteArtist(r.Context(), id); err != nil {
			respondDomainError(w, err, msgProvider)
			return
		}
		logger.Info("ARTIST_DELETE_SUCCESS", "artistId", id)
		respondJSON(w, http.StatusOK, MessageResponse{Message: msgProvider.Get(dmessages.ArtistDeleted)})
	}))

	// POST /api/artists/rank-swap - 두 아티스트 순위 교환
	mux.HandleFunc("POST /api/artists/rank-swap", guard(func(w http.ResponseWriter, r *http.Request) {
		var req RankSwapRequest
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, errorCodeInvalidRequest, msgProvider.Get(dmessages.ErrorInvalidRequest))
			return
		}

		start := time.Now()
		result, err := services.Sequencer.Swap(r.Context(), req.ArtistAID, req.ArtistBID)
		if err != nil {
			logger.Error("RANK_SWAP_FAILED",
				"artistAId", req.ArtistAID,
				"artistBId", req.ArtistBID,
				"err", err,
				"duration", time.Since(start).Milliseconds(),
			)
			respondDomainError(w, err, msgProvider)
			return
		}

		respondJSON(w, http.StatusOK, RankSwapResponse{
			Message: msgProvider.Get(dmessages.RankSwapSuccess,
				messageprovider.P("rank_a", result.RankA),
				messageprovider.P("rank_b", result.RankB),
			),
			Result: result,
		})
	}))

	// PUT /api/artists/{id}/translations/{lang} - 특정 언어 소개문 수정
	mux.HandleFunc("PUT /api/artists/{id}/translations/{lang}", guard(func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req TranslationUpdateRequest
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, errorCodeInvalidRequest, msgProvider.Get(dmessages.ErrorInvalidRequest))
			return
		}

		lang := strings.ToLower(strings.TrimSpace(r.PathValue("lang")))
		row, err := services.Artists.UpdateTranslation(r.Context(), id, lang, req.Description)
		if err != nil {
			respondDomainError(w, err, msgProvider)
			return
		}

		logger.Info("ARTIST_TRANSLATION_UPDATE_SUCCESS", "artistId", id, "lang", lang)
		respondJSON(w, http.StatusOK, row)
	}))

	// DELETE /api/artists/{id}/translations/{lang} - 특정 언어 번역 삭제
	mux.HandleFunc("DELETE /api/artists/{id}/translations/{lang}", guard(func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		lang := strings.ToLower(strings.TrimSpace(r.PathValue("lang")))
		if err := services.Artists.DeleteTranslation(r.Context(), id, lang); err != nil {
			respondDomainError(w, err, msgProvider)
			return
		}
		respondJSON(w, http.StatusOK, MessageResponse{Message: msgProvider.Get(dmessages.ArtistTranslationDeleted)})
	}))

	// POST /api/concerts - 공연 생성
	mux.HandleFunc("POST /api/concerts", guard(func(w http.ResponseWriter, r *http.Request) {
		var req ConcertSaveRequest
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, errorCodeInvalidRequest, msgProvider.Get(dmessages.ErrorInvalidRequest))
			return
		}

		concert, err := services.Concerts.CreateConcert(r.Context(), req.toParams())
		if err != nil {
			respondDomainError(w, err, msgProvider)
			return
		}

		logger.Info("CONCERT_CREATE_SUCCESS", "concertId", concert.ID)
		respondJSON(w, http.StatusCreated, concert)
	}))

	// PUT /api/concerts/{id} - 공연 수정
	mux.HandleFunc("PUT /api/concerts/{id}", guard(func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req ConcertSaveRequest
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, errorCodeInvalidRequest, msgProvider.Get(dmessages.ErrorInvalidRequest))
			return
		}

		concert, err := services.Concerts.UpdateConcert(r.Context(), id, req.toParams())
		if err != nil {
			respondDomainError(w, err, msgProvider)
			return
		}
		respondJSON(w, http.StatusOK, concert)
	}))

	// DELETE /api/concerts/{id} - 공연 삭제
	mux.HandleFunc("DELETE /api/concerts/{id}", guard(func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		if err := services.Concerts.DeleteConcert(r.Context(), id); err != nil {
			respondDomainError(w, err, msgProvider)
			return
		}
		respondJSON(w, http.StatusOK, MessageResponse{Message: msgProvider.Get(dmessages.ConcertDeleted)})
	}))

	logger.Info("directory_admin_api_registered")
}

// requireAdmin: 운영자 패스워드 헤더를 검증하는 미들웨어
func requireAdmin(
	verifier *auth.Verifier,
	msgProvider *messageprovider.Provider,
	logger *slog.Logger,
	next http.HandlerFunc,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !verifier.Verify(r.Header.Get(headerAdminPassword)) {
			logger.Warn("ADMIN_GUARD_REJECTED", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
			respondError(w, http.StatusUnauthorized, errorCodeUnauthorized, msgProvider.Get(dmessages.AuthInvalidPassword))
			return
		}
		next(w, r)
	}
}
