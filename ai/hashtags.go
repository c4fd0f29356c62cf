// Package ai derives topic hashtags from free-form interest text. The
// matchmaking core treats this as an opaque collaborator and only consumes
// the resulting set.
package ai

import (
	"sort"
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"

	"match-lab/errors"
)

// stopwords per detected language; unknown languages fall back to English.
var stopwords = map[whatlanggo.Lang]map[string]struct{}{
	whatlanggo.Eng: toSet("the", "a", "an", "and", "or", "but", "i", "im", "my",
		"me", "we", "you", "it", "is", "are", "was", "be", "to", "of", "in",
		"on", "for", "with", "about", "at", "like", "love", "enjoy", "really",
		"very", "into", "also", "talk", "talking", "chat", "chatting"),
	whatlanggo.Fra: toSet("le", "la", "les", "un", "une", "des", "et", "ou",
		"mais", "je", "tu", "il", "elle", "nous", "vous", "de", "du", "en",
		"sur", "pour", "avec", "aime", "adore", "parler", "discuter"),
	whatlanggo.Spa: toSet("el", "la", "los", "las", "un", "una", "y", "o",
		"pero", "yo", "tu", "de", "en", "sobre", "para", "con", "me", "gusta",
		"hablar"),
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Extractor turns raw interest text into normalized hashtags.
type Extractor struct {
	maxTags int
}

func NewExtractor(maxTags int) *Extractor {
	return &Extractor{maxTags: maxTags}
}

// ComputeHashtags tokenizes the input, drops stop words for the detected
// language, and returns deduplicated "#topic" tokens sorted alphabetically.
func (e *Extractor) ComputeHashtags(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errors.ErrEmptyHashtags
	}

	info := whatlanggo.Detect(trimmed)
	stops, ok := stopwords[info.Lang]
	if !ok {
		stops = stopwords[whatlanggo.Eng]
	}

	seen := make(map[string]struct{})
	var tags []string
	for _, token := range strings.FieldsFunc(strings.ToLower(trimmed), splitToken) {
		if len([]rune(token)) < 3 {
			continue
		}
		if _, stop := stops[token]; stop {
			continue
		}
		tag := "#" + token
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
		if e.maxTags > 0 && len(tags) == e.maxTags {
			break
		}
	}

	if len(tags) == 0 {
		return nil, errors.ErrEmptyHashtags
	}
	sort.Strings(tags)
	return tags, nil
}

// splitToken breaks on anything that is not part of a word or an existing
// hashtag marker.
func splitToken(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}

// NormalizeHashtags lowercases client-picked hashtags and guarantees the
// leading marker, dropping empties and duplicates.
func NormalizeHashtags(raw []string) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, tag := range raw {
		tag = strings.ToLower(strings.TrimSpace(tag))
		tag = strings.TrimLeft(tag, "#")
		if tag == "" {
			continue
		}
		tag = "#" + tag
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
