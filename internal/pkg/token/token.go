package token

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// NewNumericCode returns a zero-padded code of n decimal digits drawn from crypto/rand.
func NewNumericCode(n int) (string, error) {
	if n <= 0 || n > 18 {
		return "", fmt.Errorf("generate numeric code: unsupported length %d", n)
	}
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	v, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("generate numeric code: %w", err)
	}
	return fmt.Sprintf("%0*d", n, v.Int64()), nil
}
