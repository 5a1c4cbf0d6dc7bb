// Package stopword provides immutable stopword sets.
package stopword

import (
	"sort"
	"sync"
)

// Set is a read-only set of stopwords. The zero value is an empty set.
// Lookups are case-sensitive.
type Set struct {
	words map[string]struct{}
}

// New builds a set from words.
func New(words ...string) Set {
	s := Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w != "" {
			s.words[w] = struct{}{}
		}
	}
	return s
}

// Contains reports whether word is a stopword.
func (s Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stopwords.
func (s Set) Len() int {
	return len(s.words)
}

// Words returns the stopwords sorted alphabetically.
func (s Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// With returns a new set holding s plus extra. s is not modified.
func (s Set) With(extra ...string) Set {
	merged := Set{words: make(map[string]struct{}, len(s.words)+len(extra))}
	for w := range s.words {
		merged.words[w] = struct{}{}
	}
	for _, w := range extra {
		if w != "" {
			merged.words[w] = struct{}{}
		}
	}
	return merged
}

// Without returns a new set holding s minus drop. s is not modified.
func (s Set) Without(drop ...string) Set {
	removed := make(map[string]struct{}, len(drop))
	for _, w := range drop {
		removed[w] = struct{}{}
	}
	out := Set{words: make(map[string]struct{}, len(s.words))}
	for w := range s.words {
		if _, ok := removed[w]; !ok {
			out.words[w] = struct{}{}
		}
	}
	return out
}

var (
	english     Set
	englishOnce sync.Once
)

// English returns the shared English stopword set.
func English() Set {
	englishOnce.Do(func() {
		english = New(englishWords...)
	})
	return english
}

// englishWords is the NLTK English stopword corpus.
var englishWords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "you're", "you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "she's", "her", "hers", "herself",
	"it", "it's", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "that'll", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until", "while",
	"of", "at", "by", "for", "with", "about", "against", "between", "into", "through",
	"during", "before", "after", "above", "below", "to", "from", "up", "down",
	"in", "out", "on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "all", "any", "both", "each",
	"few", "more", "most", "other", "some", "such", "no", "nor", "not", "only",
	"own", "same", "so", "than", "too", "very", "s", "t", "can", "will", "just",
	"don", "don't", "should", "should've", "now", "d", "ll", "m", "o", "re", "ve", "y",
	"ain", "aren", "aren't", "couldn", "couldn't", "didn", "didn't", "doesn", "doesn't",
	"hadn", "hadn't", "hasn", "hasn't", "haven", "haven't", "isn", "isn't",
	"ma", "mightn", "mightn't", "mustn", "mustn't", "needn", "needn't",
	"shan", "shan't", "shouldn", "shouldn't", "wasn", "wasn't", "weren", "weren't",
	"won", "won't", "wouldn", "wouldn't",
}
