package utils

import (
	"fmt"
	rndm "math/rand"
	"strings"
	"time"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// FallbackID builds a timestamp+random identifier for when UUID generation
// is unavailable. Collision-resistant within a single device's lifetime.
func FallbackID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), GenerateRandomString(9))
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ToISO formats a time as RFC3339 in UTC, matching the stored record shape.
func ToISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
