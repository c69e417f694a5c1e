package utils

import (
	"crypto/sha1"
	"fmt"
)

// HashString returns a short hex digest used for cache keys.
func HashString(input string) string {
	sum := sha1.Sum([]byte(input))
	return fmt.Sprintf("%x", sum[:8])
}
