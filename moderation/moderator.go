// Package moderation filters blocklisted topics out of hashtag sets before
// they enter the waiting queue.
package moderation

import (
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator matches hashtags against a blocklist with an Aho-Corasick
// automaton, so obfuscated variants containing a blocked term are caught too.
type Moderator struct {
	matcher  *goahocorasick.Machine
	patterns int
}

// NewModerator builds the automaton from the blocked terms. Terms are
// lowercased; hashtag markers are stripped before matching.
func NewModerator(blockedTerms []string) (*Moderator, error) {
	patterns := make([][]rune, 0, len(blockedTerms))
	for _, term := range blockedTerms {
		term = strings.ToLower(strings.TrimLeft(strings.TrimSpace(term), "#"))
		if term == "" {
			continue
		}
		patterns = append(patterns, []rune(term))
	}

	m := new(goahocorasick.Machine)
	if len(patterns) > 0 {
		if err := m.Build(patterns); err != nil {
			return nil, err
		}
	}
	return &Moderator{matcher: m, patterns: len(patterns)}, nil
}

// FilterHashtags returns the tags that contain no blocked term. With an
// empty blocklist everything passes.
func (m *Moderator) FilterHashtags(tags []string) []string {
	var allowed []string
	for _, tag := range tags {
		if !m.blocked(tag) {
			allowed = append(allowed, tag)
		}
	}
	return allowed
}

func (m *Moderator) blocked(tag string) bool {
	if m.patterns == 0 {
		return false
	}
	normalized := []rune(strings.ToLower(strings.TrimLeft(tag, "#")))
	if len(normalized) == 0 {
		return false
	}
	return len(m.matcher.MultiPatternSearch(normalized, false)) > 0
}
