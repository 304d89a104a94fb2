// Package reorder rearranges sentence constituents to match the word order
// of a target language. Sentences are tokenized losslessly, split into
// clause chunks, and each chunk's subject, verb and object groups are
// reassembled in the target order. Separator tokens never move, so spacing
// and punctuation survive reordering.
package reorder

import (
	"strings"
	"unicode"

	"github.com/openlexica/bhasha/language"
	"github.com/openlexica/bhasha/morph"
)

// Token is a single tokenizer output: either a word or a run of
// non-word characters (spaces, punctuation).
type Token struct {
	Text       string
	Normalized string // lowercased Text, empty for separators
	POS        morph.POS
	Lemma      string
	Index      int
	IsWord     bool
}

// subordinators start a dependent clause; chunking breaks before them so
// each clause reorders on its own.
var subordinators = map[string]bool{
	"because": true, "although": true, "though": true, "while": true,
	"whereas": true, "unless": true, "since": true, "if": true,
	"when": true, "until": true, "that": true, "which": true, "who": true,
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) ||
		r == '\'' || r == '-'
}

// Tokenize splits text into alternating word and separator tokens and tags
// each word with its part of speech and lemma. Join(Tokenize(s)) == s.
func Tokenize(text string) []Token {
	var tokens []Token
	runes := []rune(text)
	for i := 0; i < len(runes); {
		j := i
		word := isWordRune(runes[i])
		for j < len(runes) && isWordRune(runes[j]) == word {
			j++
		}
		tok := Token{Text: string(runes[i:j]), Index: len(tokens), IsWord: word}
		if word {
			tok.Normalized = strings.ToLower(tok.Text)
		}
		tokens = append(tokens, tok)
		i = j
	}

	prev := ""
	for i := range tokens {
		if !tokens[i].IsWord {
			continue
		}
		tokens[i].POS = morph.DetectPOS(tokens[i].Normalized, prev)
		tokens[i].Lemma = morph.Lemmatize(tokens[i].Normalized)
		prev = tokens[i].Normalized
	}
	return tokens
}

// Join reassembles tokens into text.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Words returns just the word tokens, in order.
func Words(tokens []Token) []Token {
	var out []Token
	for _, t := range tokens {
		if t.IsWord {
			out = append(out, t)
		}
	}
	return out
}

// Chunk splits a token stream into clause-sized pieces: a new chunk starts
// after sentence punctuation and before a subordinating conjunction.
func Chunk(tokens []Token) [][]Token {
	var chunks [][]Token
	start := 0
	for i, t := range tokens {
		if t.IsWord {
			if subordinators[t.Normalized] && i > start {
				chunks = append(chunks, tokens[start:i])
				start = i
			}
			continue
		}
		if strings.ContainsAny(t.Text, ".!?;।॥") {
			chunks = append(chunks, tokens[start:i+1])
			start = i + 1
		}
	}
	if start < len(tokens) {
		chunks = append(chunks, tokens[start:])
	}
	return chunks
}

// Reorder rearranges word tokens from the source language's constituent
// order into the target language's. Tokens are returned unchanged when the
// orders already agree or a clause cannot be decomposed.
func Reorder(tokens []Token, src, tgt *language.Profile) []Token {
	if src == nil || tgt == nil || src.Order == tgt.Order {
		return tokens
	}
	var out []Token
	for _, chunk := range Chunk(tokens) {
		out = append(out, reorderChunk(chunk, src.Order, tgt.Order)...)
	}
	return out
}

func reorderChunk(chunk []Token, src, tgt language.WordOrder) []Token {
	var words []int
	for i, t := range chunk {
		if t.IsWord {
			words = append(words, i)
		}
	}
	if len(words) < 3 {
		return chunk
	}

	s, v, o, ok := decompose(chunk, words, src)
	if !ok {
		return chunk
	}

	var seq []int
	for _, part := range strings.Split(string(tgt), "") {
		switch part {
		case "S":
			seq = append(seq, s...)
		case "V":
			seq = append(seq, v...)
		case "O":
			seq = append(seq, o...)
		}
	}
	if len(seq) != len(words) {
		return chunk
	}

	// Re-slot the reordered words into the original word positions so that
	// separators stay put.
	out := make([]Token, len(chunk))
	copy(out, chunk)
	for k, pos := range words {
		src := chunk[seq[k]]
		out[pos].Text = src.Text
		out[pos].Normalized = src.Normalized
		out[pos].POS = src.POS
		out[pos].Lemma = src.Lemma
	}
	return out
}

// decompose splits a clause's word positions into subject, verb and object
// groups according to the source order. ok is false when no split is
// plausible, in which case the clause is left alone.
func decompose(chunk []Token, words []int, order language.WordOrder) (s, v, o []int, ok bool) {
	isVerb := func(k int) bool { return chunk[words[k]].POS == morph.Verb }
	n := len(words)

	switch order {
	case language.SVO, language.OVS:
		vi := -1
		for k := 0; k < n; k++ {
			if isVerb(k) {
				vi = k
				break
			}
		}
		if vi <= 0 || vi == n-1 {
			return nil, nil, nil, false
		}
		vj := vi
		for vj+1 < n-1 && isVerb(vj+1) {
			vj++
		}
		first, last := words[:vi], words[vj+1:]
		v = words[vi : vj+1]
		if order == language.SVO {
			return first, v, last, true
		}
		return last, v, first, true

	case language.SOV, language.OSV:
		vj := -1
		for k := n - 1; k >= 0; k-- {
			if isVerb(k) {
				vj = k
				break
			}
		}
		if vj <= 1 {
			return nil, nil, nil, false
		}
		vi := vj
		for vi-1 > 0 && isVerb(vi-1) {
			vi--
		}
		pre := words[:vi]
		cut := nounPhraseEnd(chunk, pre)
		if cut <= 0 || cut >= len(pre) {
			return nil, nil, nil, false
		}
		v = words[vi : vj+1]
		if order == language.SOV {
			return pre[:cut], v, pre[cut:], true
		}
		return pre[cut:], v, pre[:cut], true

	case language.VSO, language.VOS:
		if !isVerb(0) {
			return nil, nil, nil, false
		}
		vj := 0
		for vj+1 < n-2 && isVerb(vj+1) {
			vj++
		}
		post := words[vj+1:]
		cut := nounPhraseEnd(chunk, post)
		if cut <= 0 || cut >= len(post) {
			return nil, nil, nil, false
		}
		v = words[:vj+1]
		if order == language.VSO {
			return post[:cut], v, post[cut:], true
		}
		return post[cut:], v, post[:cut], true
	}
	return nil, nil, nil, false
}

// nounPhraseEnd returns the index just past the first noun or pronoun in
// the group, so determiners and adjectives stay attached to their head.
func nounPhraseEnd(chunk []Token, group []int) int {
	for k, pos := range group {
		switch chunk[pos].POS {
		case morph.Noun, morph.Pronoun:
			return k + 1
		}
	}
	return 0
}

// MoveAdjectivesAfterNouns swaps adjective-noun pairs so the adjective
// follows its head, for targets like Spanish or French. Only pairs
// separated by whitespace move.
func MoveAdjectivesAfterNouns(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)
	for i := 0; i < len(out); i++ {
		if !out[i].IsWord || out[i].POS != morph.Adjective {
			continue
		}
		j := nextWord(out, i)
		if j < 0 || out[j].POS != morph.Noun {
			continue
		}
		swapWords(out, i, j)
		i = j
	}
	return out
}

// MoveAdjectivesBeforeNouns is the inverse: noun-adjective pairs become
// adjective-noun.
func MoveAdjectivesBeforeNouns(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)
	for i := 0; i < len(out); i++ {
		if !out[i].IsWord || out[i].POS != morph.Noun {
			continue
		}
		j := nextWord(out, i)
		if j < 0 || out[j].POS != morph.Adjective {
			continue
		}
		swapWords(out, i, j)
		i = j
	}
	return out
}

// nextWord returns the index of the next word token when only whitespace
// separates it from position i, or -1.
func nextWord(tokens []Token, i int) int {
	for j := i + 1; j < len(tokens); j++ {
		if tokens[j].IsWord {
			return j
		}
		if strings.TrimSpace(tokens[j].Text) != "" {
			return -1
		}
	}
	return -1
}

func swapWords(tokens []Token, i, j int) {
	tokens[i].Text, tokens[j].Text = tokens[j].Text, tokens[i].Text
	tokens[i].Normalized, tokens[j].Normalized = tokens[j].Normalized, tokens[i].Normalized
	tokens[i].POS, tokens[j].POS = tokens[j].POS, tokens[i].POS
	tokens[i].Lemma, tokens[j].Lemma = tokens[j].Lemma, tokens[i].Lemma
}
