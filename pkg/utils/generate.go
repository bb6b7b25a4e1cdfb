package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// GenerateGrantToken returns an opaque url-safe token string for
// verification and reset links.
func GenerateGrantToken() string {
	return uuid.NewString()
}

// ==================== VERIFICATION CODE ====================

// GenerateCode creates a numeric one-time code of the given length.
func GenerateCode(length int) string {
	if length <= 0 {
		length = 4
	}

	code := ""
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			n = big.NewInt(0)
		}
		code += fmt.Sprintf("%d", n.Int64())
	}

	return code
}
