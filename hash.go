package bhasha

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheKey builds the cache key for a language pair and text hash.
func CacheKey(sourceLang, targetLang, hash string) string {
	return sourceLang + ":" + targetLang + ":" + hash
}
