package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestVerifier(t *testing.T) {
	digest := sha256.Sum256([]byte("correct-horse"))
	verifier := NewVerifier(hex.EncodeToString(digest[:]))

	t.Run("CorrectPassword", func(t *testing.T) {
		if !verifier.Verify("correct-horse") {
			t.Error("correct password rejected")
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		if verifier.Verify("battery-staple") {
			t.Error("wrong password accepted")
		}
		if verifier.Verify("") {
			t.Error("empty password accepted")
		}
	})

	t.Run("UppercaseHashAccepted", func(t *testing.T) {
		upper := NewVerifier("  " + hexUpper(digest[:]) + " ")
		if !upper.Verify("correct-horse") {
			t.Error("uppercase hash config rejected correct password")
		}
	})

	t.Run("EmptyHashRejectsAll", func(t *testing.T) {
		empty := NewVerifier("")
		if empty.Verify("anything") {
			t.Error("empty hash config accepted a password")
		}
	})
}

func hexUpper(b []byte) string {
	const digits = "0123456789ABCDEF"
	out := make([]byte, 0, len(b)*2)
	for _, v := range b {
		out = append(out, digits[v>>4], digits[v&0x0f])
	}
	return string(out)
}
