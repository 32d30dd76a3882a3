package httpapi

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/kstage/kstage-go/internal/common/messageprovider"
	apperrors "github.com/kstage/kstage-go/internal/directory/errors"
	dmessages "github.com/kstage/kstage-go/internal/directory/messages"
)

// API 에러 코드
const (
	errorCodeInvalidRequest = "INVALID_REQUEST"
	errorCodeNotFound       = "NOT_FOUND"
	errorCodeConflict       = "CONFLICT"
	errorCodeUnauthorized   = "UNAUTHORIZED"
	errorCodeInternalError  = "INTERNAL_ERROR"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, code string, message string) {
	respondJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// respondDomainError: 도메인 에러를 HTTP 상태와 에러 코드로 변환해 응답한다.
// 검증 400, 대상 없음 404, 충돌 409, 그 외 500.
func respondDomainError(w http.ResponseWriter, err error, msgProvider *messageprovider.Provider) {
	switch {
	case apperrors.IsValidation(err):
		respondError(w, http.StatusBadRequest, errorCodeInvalidRequest, err.Error())
	case apperrors.IsNotFound(err):
		respondError(w, http.StatusNotFound, errorCodeNotFound, msgProvider.Get(dmessages.ErrorNotFound))
	case apperrors.IsConflict(err):
		respondError(w, http.StatusConflict, errorCodeConflict, msgProvider.Get(dmessages.ErrorConflict))
	default:
		respondError(w, http.StatusInternalServerError, errorCodeInternalError, msgProvider.Get(dmessages.ErrorGeneric))
	}
}
