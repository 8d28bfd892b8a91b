package service

import (
	"crypto/rand"
	"math/big"

	"github.com/zhdanov/girls-backend/internal/domain"
)

// codeAlphabet leaves out 0/O, 1/I and L so codes survive being read aloud
// or typed from a phone screen.
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// generateAccessCode returns a fixed-length, high-entropy one-time code.
// A broken entropy source is not recoverable, so it panics rather than
// returning an error.
func generateAccessCode() string {
	max := big.NewInt(int64(len(codeAlphabet)))
	buf := make([]byte, domain.CodeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("access code generation: entropy source failed: " + err.Error())
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf)
}
