// Package cache stores rendered translation results keyed by the
// source/target pair and a hash of the input text.
package cache

// TranslationCache is the storage contract the translation engine writes
// through. Get returns false on a miss or an expired entry.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
