package security

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Base36Upper is the alphabet used for human-facing reference codes.
const Base36Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomCode draws length characters uniformly from alphabet using crypto/rand.
func RandomCode(alphabet string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	if len(alphabet) == 0 {
		return "", fmt.Errorf("alphabet must not be empty")
	}

	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("drawing random index: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}
