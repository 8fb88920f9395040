package common

import (
	"crypto/rand"
	"math/big"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

var base36Size = big.NewInt(int64(len(base36Alphabet)))

// MakeRandBase36String returns n random characters from [0-9a-z].
//
// It returns an error if the random number generator fails.
func MakeRandBase36String(n int) (string, error) {
	b := make([]byte, n)
	for i := range b {
		v, err := rand.Int(rand.Reader, base36Size)
		if err != nil {
			return "", err
		}
		b[i] = base36Alphabet[v.Int64()]
	}
	return string(b), nil
}
