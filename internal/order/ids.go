package order

import (
	"fmt"
	"math/rand"
	"time"
)

const uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// OrderCode generates a SAP-style order code, SAP-<year>-<n> with n in
// [100, 999999].
func OrderCode(rng *rand.Rand) string {
	suffix := 100 + rng.Intn(999900)
	return fmt.Sprintf("SAP-%d-%d", time.Now().Year(), suffix)
}

// Code generates a zero-padded entity code such as CLI-00036 or DRV-301111.
// The numeric part is in [1, 10^digits-1].
func Code(rng *rand.Rand, prefix string, digits int) string {
	max := 1
	for i := 0; i < digits; i++ {
		max *= 10
	}
	n := 1 + rng.Intn(max-1)
	return fmt.Sprintf("%s-%0*d", prefix, digits, n)
}

// Plate generates a license plate of two uppercase letters followed by five
// digits, e.g. GF56726.
func Plate(rng *rand.Rand) string {
	b := make([]byte, 7)
	for i := 0; i < 2; i++ {
		b[i] = uppercase[rng.Intn(len(uppercase))]
	}
	for i := 2; i < 7; i++ {
		b[i] = byte('0' + rng.Intn(10))
	}
	return string(b)
}
