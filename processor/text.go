package processor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/openlexica/bhasha"
)

// TextProcessor extracts and applies translations to plain text documents.
// Each non-empty line becomes one translatable segment so that document
// structure (blank lines, indentation) survives translation.
type TextProcessor struct {
	skipMarkers []string
}

// TextProcessorOption configures the text processor.
type TextProcessorOption func(*TextProcessor)

// WithSkipMarkers sets line prefixes that are carried through untranslated,
// for example "#" for comment lines or ">" for quoted text.
func WithSkipMarkers(markers ...string) TextProcessorOption {
	return func(p *TextProcessor) {
		p.skipMarkers = markers
	}
}

// NewTextProcessor creates a new plain text processor.
func NewTextProcessor(opts ...TextProcessorOption) *TextProcessor {
	p := &TextProcessor{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// parsedText holds the split lines between Extract and Apply.
type parsedText struct {
	lines []string
}

// Extract splits the document into lines and collects translatable
// segments, deduplicated by content hash.
func (p *TextProcessor) Extract(content string) (interface{}, []TextNode, error) {
	lines := strings.Split(content, "\n")

	var nodes []TextNode
	seenHashes := make(map[string]bool)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !p.translatable(trimmed) {
			continue
		}

		hash := bhasha.HashText(trimmed)
		if seenHashes[hash] {
			continue
		}
		seenHashes[hash] = true

		nodes = append(nodes, TextNode{
			ID:       fmt.Sprintf("line-%d", i),
			Text:     trimmed,
			Hash:     hash,
			NodeType: "text_line",
			Metadata: map[string]string{
				"line": fmt.Sprintf("%d", i),
			},
		})
	}

	return &parsedText{lines: lines}, nodes, nil
}

// Apply substitutes translated segments back into the document,
// preserving each line's leading and trailing whitespace.
func (p *TextProcessor) Apply(parsed interface{}, nodes []TextNode, translations map[string]string) (string, error) {
	pt, ok := parsed.(*parsedText)
	if !ok {
		return "", &bhasha.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "text",
		}
	}

	out := make([]string, len(pt.lines))
	for i, line := range pt.lines {
		trimmed := strings.TrimSpace(line)
		if translated, ok := translations[bhasha.HashText(trimmed)]; ok && p.translatable(trimmed) {
			out[i] = preserveWhitespace(line, translated)
		} else {
			out[i] = line
		}
	}

	return strings.Join(out, "\n"), nil
}

// ContentType returns "text".
func (p *TextProcessor) ContentType() string {
	return "text"
}

// translatable reports whether a trimmed line carries natural language
// worth translating. URLs, bare numbers and marked lines pass through.
func (p *TextProcessor) translatable(s string) bool {
	if s == "" {
		return false
	}
	for _, marker := range p.skipMarkers {
		if strings.HasPrefix(s, marker) {
			return false
		}
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return false
	}
	if strings.Contains(s, "/") && !strings.Contains(s, " ") {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// Verify TextProcessor implements ContentProcessor
var _ ContentProcessor = (*TextProcessor)(nil)
