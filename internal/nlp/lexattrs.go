package nlp

import (
	_ "embed"
	"strings"
	"unicode"
)

//go:embed stop_words_en.txt
var stopWordsRaw string

// stopWords is the lower-cased English stop-word set, built once.
var stopWords = func() map[string]struct{} {
	m := make(map[string]struct{}, 400)
	for _, w := range strings.Fields(stopWordsRaw) {
		m[strings.ToLower(w)] = struct{}{}
	}
	return m
}()

// IsStopWord reports whether text is a low-information English word.
// Matching is case-insensitive and treats curly apostrophes as straight ones.
func IsStopWord(text string) bool {
	w := strings.ToLower(strings.ReplaceAll(text, "’", "'"))
	_, ok := stopWords[w]
	return ok
}

// IsPunctuation reports whether every rune of text is punctuation.
func IsPunctuation(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
