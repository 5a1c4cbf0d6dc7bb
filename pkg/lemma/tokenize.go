// Package lemma tokenizes cleaned documents and reduces each token to its
// base form.
package lemma

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// cliticSuffixes are split off a word the way the Penn Treebank tokenizer
// does. "n't" is handled separately because it takes the preceding "n".
var cliticSuffixes = []string{"'s", "'m", "'d", "'ll", "'re", "'ve"}

// fusedWords are contractions written without an apostrophe, split at the
// given byte offset.
var fusedWords = map[string]int{
	"cannot": 3,
	"gimme":  3,
	"gonna":  3,
	"gotta":  3,
	"lemme":  3,
	"wanna":  3,
}

// Tokenize splits text into word and punctuation tokens.
// Word boundaries follow Unicode text segmentation (UAX #29); English clitics
// are then split off ("can't" -> "ca", "n't"; "it's" -> "it", "'s").
// Whitespace is dropped. Empty input yields no tokens.
func Tokenize(text string) []string {
	var (
		tokens  []string
		segment string
		state   = -1
	)
	for len(text) > 0 {
		segment, text, state = uniseg.FirstWordInString(text, state)
		if isBlank(segment) {
			continue
		}
		tokens = append(tokens, splitClitics(segment)...)
	}
	return tokens
}

func isBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// splitClitics splits one word segment. Curly apostrophes are treated like
// straight ones.
func splitClitics(word string) []string {
	lower := strings.ToLower(strings.ReplaceAll(word, "’", "'"))

	if at, ok := fusedWords[lower]; ok {
		return []string{word[:at], word[at:]}
	}

	if strings.HasSuffix(lower, "n't") && len(lower) > len("n't") {
		cut := len(lower) - len("n't")
		return []string{trimTo(word, lower, cut), lower[cut:]}
	}

	for _, suffix := range cliticSuffixes {
		if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix) {
			cut := len(lower) - len(suffix)
			return []string{trimTo(word, lower, cut), lower[cut:]}
		}
	}

	return []string{word}
}

// trimTo returns the prefix of word matching lower[:cut]. The two differ in
// length only when word held multi-byte apostrophes.
func trimTo(word, lower string, cut int) string {
	if len(word) == len(lower) {
		return word[:cut]
	}
	return lower[:cut]
}
