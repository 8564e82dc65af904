package entry

import (
	"regexp"
	"strings"
	"sync"
)

// DefaultTagSymbols introduce a tag when the journal configures none.
const DefaultTagSymbols = "@"

var (
	tagPatternsMu sync.Mutex
	tagPatterns   = map[string]*regexp.Regexp{}
)

// TagPattern matches a tag symbol followed by word characters. The tag
// itself is the first capture group; the match may include the whitespace
// in front of it.
func TagPattern(symbols string) *regexp.Regexp {
	if symbols == "" {
		symbols = DefaultTagSymbols
	}

	tagPatternsMu.Lock()
	defer tagPatternsMu.Unlock()
	if re, ok := tagPatterns[symbols]; ok {
		return re
	}

	class := strings.Builder{}
	for _, r := range symbols {
		if !isAlnum(r) {
			class.WriteByte('\\')
		}
		class.WriteRune(r)
	}
	re := regexp.MustCompile(`(?:^|\s)([` + class.String() + `][-+*#/\p{L}\p{N}_]+)`)
	tagPatterns[symbols] = re
	return re
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// Tags returns the distinct tags of the entry, lower-cased, in the order
// they first appear.
func (e *Entry) Tags(symbols string) []string {
	re := TagPattern(symbols)
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, m := range re.FindAllStringSubmatch(e.Text, -1) {
		tag := strings.ToLower(m[1])
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// HasTag reports whether the entry carries tag, compared case-insensitively.
func (e *Entry) HasTag(symbols, tag string) bool {
	tag = strings.ToLower(tag)
	for _, t := range e.Tags(symbols) {
		if t == tag {
			return true
		}
	}
	return false
}
