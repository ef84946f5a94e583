package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const base62Chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var base62Len = big.NewInt(int64(len(base62Chars)))

const (
	TokenIDLen   = 32
	MessageIDLen = 24
)

// RandomID returns prefix followed by n characters drawn from crypto/rand.
func RandomID(prefix string, n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("random id length must be positive, got %d", n)
	}
	var sb strings.Builder
	sb.Grow(len(prefix) + n)
	sb.WriteString(prefix)

	for range n {
		num, err := rand.Int(rand.Reader, base62Len)
		if err != nil {
			return "", err
		}
		sb.WriteByte(base62Chars[num.Int64()])
	}

	return sb.String(), nil
}

// TokenID identifies an issued admin token so it can be revoked.
func TokenID() (string, error) {
	return RandomID("jti_", TokenIDLen)
}

// MessageID tags an outgoing broker message for consumer side dedup.
func MessageID() (string, error) {
	return RandomID("msg_", MessageIDLen)
}
