package useragent

import (
	"cmp"
	"slices"
	"strings"
)

// Language is one entry of an Accept-Language header.
type Language struct {
	Tag      string  `yaml:"tag" json:"tag"`
	Priority float64 `yaml:"priority" json:"priority"`
}

// ParseLanguagePreferences parses an Accept-Language header into tags ordered
// by descending priority. Tags are trimmed and lower-cased. A missing or empty
// quality means 1.0, an unparseable one means 0. When a tag repeats, the last
// priority wins but the tag keeps its first position among equal priorities.
func ParseLanguagePreferences(header string) []Language {
	if header == "" {
		return nil
	}

	if len(header) > maxAcceptLanguageLength {
		// keep whole entries only
		cut := strings.LastIndexByte(header[:maxAcceptLanguageLength+1], ',')
		if cut < 0 {
			return nil
		}
		header = header[:cut]
	}

	var (
		langs []Language
		index = make(map[string]int)
	)

	for part := range strings.SplitSeq(header, ",") {
		segments := strings.Split(part, ";")

		tag := strings.ToLower(strings.TrimSpace(segments[0]))
		if tag == "" {
			continue
		}

		q := 1.0
		if len(segments) > 1 {
			if qPart := strings.TrimSpace(segments[1]); qPart != "" {
				q = parseQuality(qPart)
			}
		}

		if i, ok := index[tag]; ok {
			langs[i].Priority = q
			continue
		}
		index[tag] = len(langs)
		langs = append(langs, Language{Tag: tag, Priority: q})
	}

	slices.SortStableFunc(langs, func(a, b Language) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	return langs
}

// ParseLanguages returns just the tags of ParseLanguagePreferences.
func ParseLanguages(header string) []string {
	prefs := ParseLanguagePreferences(header)
	if len(prefs) == 0 {
		return []string{}
	}

	tags := make([]string, len(prefs))
	for i, l := range prefs {
		tags[i] = l.Tag
	}
	return tags
}

// NegotiateLanguage picks the best supported language for header: exact tag
// matches first, then base-language matches (en-us matches en).
// It returns fallback when nothing matches. Zero-priority tags are never chosen.
func NegotiateLanguage(header string, supported []string, fallback string) string {
	if header == "" || len(supported) == 0 {
		return fallback
	}

	normalized := make([]string, len(supported))
	for i, s := range supported {
		normalized[i] = strings.ToLower(s)
	}

	prefs := ParseLanguagePreferences(header)

	for _, l := range prefs {
		if l.Priority > 0 && slices.Contains(normalized, l.Tag) {
			return l.Tag
		}
	}

	for _, l := range prefs {
		if l.Priority <= 0 {
			continue
		}
		if base, _, found := strings.Cut(l.Tag, "-"); found && base != "" {
			if slices.Contains(normalized, base) {
				return base
			}
		}
	}

	return fallback
}

func parseQuality(s string) float64 {
	s = strings.TrimSpace(strings.TrimPrefix(s, "q="))
	return min(max(leadingFloat(s), 0), 1)
}
