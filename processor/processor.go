// Package processor extracts translatable text from structured content and
// reapplies translated strings to it.
package processor

import "github.com/openlexica/bhasha"

// ContentProcessor is an alias to the main package interface.
type ContentProcessor = bhasha.ContentProcessor

// TextNode is an alias to the main package type.
type TextNode = bhasha.TextNode

// DefaultIgnoredTags contains HTML tags whose content is never translated.
var DefaultIgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}
