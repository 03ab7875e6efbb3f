package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"
)

const referenceCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// GenerateCode produces n random characters from an unambiguous alphabet
// (no I/O/0/1). Uses crypto/rand with rand.Int to avoid modulo bias.
func GenerateCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(referenceCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(referenceCharset[num.Int64()])
	}
	return sb.String(), nil
}

// GenerateBookingReference returns a customer-facing reference like
// "BK-7XQ2M9KP". Uniqueness is enforced by the DB; callers retry on
// collision.
func GenerateBookingReference() (string, error) {
	code, err := GenerateCode(8)
	if err != nil {
		return "", err
	}
	return "BK-" + code, nil
}
