package processor

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/openlexica/bhasha"
	"golang.org/x/net/html"
)

// HTMLProcessor extracts and applies translations to HTML content.
type HTMLProcessor struct {
	ignoredTags map[string]bool
}

// NewHTMLProcessor creates an HTML processor with the default ignored tags.
func NewHTMLProcessor() *HTMLProcessor {
	return &HTMLProcessor{ignoredTags: DefaultIgnoredTags}
}

// NewHTMLProcessorWithIgnoredTags creates an HTML processor that skips the
// given tags.
func NewHTMLProcessorWithIgnoredTags(tags []string) *HTMLProcessor {
	ignored := make(map[string]bool)
	for _, tag := range tags {
		ignored[strings.ToLower(tag)] = true
	}
	return &HTMLProcessor{ignoredTags: ignored}
}

// parsedHTML holds the parsed document between Extract and Apply.
type parsedHTML struct {
	doc *goquery.Document
}

// Extract parses HTML and collects the translatable text nodes,
// deduplicated by content hash.
func (p *HTMLProcessor) Extract(content string) (interface{}, []TextNode, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, nil, &bhasha.ProcessorError{
			Message:     "failed to parse HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	var nodes []TextNode
	seenHashes := make(map[string]bool)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if p.skip(n) {
			return
		}
		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				hash := bhasha.HashText(trimmed)
				if !seenHashes[hash] {
					seenHashes[hash] = true
					node := TextNode{
						ID:       fmt.Sprintf("node-%d", len(nodes)),
						Text:     trimmed,
						Hash:     hash,
						NodeType: "html_text",
						Metadata: map[string]string{},
					}
					if n.Parent != nil {
						node.Metadata["parent_tag"] = n.Parent.Data
					}
					nodes = append(nodes, node)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	return &parsedHTML{doc: doc}, nodes, nil
}

// Apply substitutes translated strings back into the document, preserving
// each text node's original surrounding whitespace.
func (p *HTMLProcessor) Apply(parsed interface{}, nodes []TextNode, translations map[string]string) (string, error) {
	ph, ok := parsed.(*parsedHTML)
	if !ok {
		return "", &bhasha.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "html",
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if p.skip(n) {
			return
		}
		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				if translated, ok := translations[bhasha.HashText(trimmed)]; ok {
					n.Data = preserveWhitespace(n.Data, translated)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	ph.doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	out, err := ph.doc.Html()
	if err != nil {
		return "", &bhasha.ProcessorError{
			Message:     "failed to serialize HTML",
			Cause:       err,
			ContentType: "html",
		}
	}
	return out, nil
}

// ContentType returns "html".
func (p *HTMLProcessor) ContentType() string {
	return "html"
}

// skip reports whether the subtree under n is excluded from translation.
func (p *HTMLProcessor) skip(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if p.ignoredTags[strings.ToLower(n.Data)] {
		return true
	}
	for _, attr := range n.Attr {
		if attr.Key == "data-no-translate" {
			return true
		}
	}
	return false
}

// preserveWhitespace carries the original leading/trailing whitespace over
// to the translated text.
func preserveWhitespace(original, translated string) string {
	leadingLen := len(original) - len(strings.TrimLeft(original, " \t\n\r"))
	leading := original[:leadingLen]

	trailingLen := len(original) - len(strings.TrimRight(original, " \t\n\r"))
	trailing := ""
	if trailingLen > 0 {
		trailing = original[len(original)-trailingLen:]
	}
	return leading + translated + trailing
}

// TranslateHTML runs every text node of an HTML fragment through the
// engine and sets lang and dir attributes on the <html> tag when present.
func TranslateHTML(ctx context.Context, e *bhasha.Engine, content, sourceLang, targetLang string) (string, error) {
	p := NewHTMLProcessor()

	parsed, nodes, err := p.Extract(content)
	if err != nil {
		return "", err
	}
	if len(nodes) == 0 {
		return content, nil
	}

	translations := make(map[string]string, len(nodes))
	for _, node := range nodes {
		r, err := e.Translate(ctx, node.Text, sourceLang, targetLang)
		if err != nil {
			return "", err
		}
		translations[node.Hash] = r.Text
	}

	out, err := p.Apply(parsed, nodes, translations)
	if err != nil {
		return "", err
	}
	return setHTMLAttributes(out, e, targetLang), nil
}

// setHTMLAttributes stamps lang and dir on the <html> element, using the
// registry's profile for the target language.
func setHTMLAttributes(content string, e *bhasha.Engine, targetLang string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}

	htmlTag := doc.Find("html")
	if htmlTag.Length() == 0 {
		return content
	}

	profile := e.Registry().Profile(targetLang)
	htmlTag.SetAttr("lang", profile.Code)
	dir := "ltr"
	if profile.RTL {
		dir = "rtl"
	}
	htmlTag.SetAttr("dir", dir)

	out, err := doc.Html()
	if err != nil {
		return content
	}
	return out
}

// Verify HTMLProcessor implements ContentProcessor
var _ ContentProcessor = (*HTMLProcessor)(nil)
