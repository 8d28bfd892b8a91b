package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zhdanov/girls-backend/internal/domain"
)

func TestGenerateAccessCodeShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := generateAccessCode()
		assert.Len(t, code, domain.CodeLength)
		for _, c := range code {
			assert.Containsf(t, codeAlphabet, string(c), "unexpected character %q in code %q", c, code)
		}
	}
}

func TestGenerateAccessCodeAvoidsAmbiguousCharacters(t *testing.T) {
	for _, forbidden := range []string{"0", "O", "1", "I", "L"} {
		assert.NotContains(t, codeAlphabet, forbidden)
	}
}

func TestGenerateAccessCodeUniqueness(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		code := generateAccessCode()
		if seen[code] {
			t.Fatalf("duplicate code generated: %s", code)
		}
		seen[code] = true
	}
}

func TestGenerateAccessCodeIsUppercase(t *testing.T) {
	code := generateAccessCode()
	assert.Equal(t, strings.ToUpper(code), code)
}
