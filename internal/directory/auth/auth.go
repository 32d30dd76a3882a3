// Package auth: 운영자 패스워드 검증
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Verifier: 운영자 패스워드를 SHA-256 다이제스트로 검증한다.
// 평문 패스워드는 어디에도 저장하지 않는다.
type Verifier struct {
	passwordHash string // 소문자 16진수 다이제스트
}

// NewVerifier: 새로운 Verifier 인스턴스 생성
func NewVerifier(passwordHash string) *Verifier {
	return &Verifier{passwordHash: strings.ToLower(strings.TrimSpace(passwordHash))}
}

// Verify: 패스워드가 설정된 다이제스트와 일치하는지 확인한다.
func (v *Verifier) Verify(password string) bool {
	if v == nil || v.passwordHash == "" {
		return false
	}

	digest := sha256.Sum256([]byte(password))
	encoded := hex.EncodeToString(digest[:])
	return subtle.ConstantTimeCompare([]byte(encoded), []byte(v.passwordHash)) == 1
}
