package useragent

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/uadetect/pkg/rules"
)

// Classify walks t in insertion order and returns the name of the first rule
// whose pattern matches input. Rules with empty patterns are skipped.
// A matching rule with an empty name yields the matched text instead.
func (m *Matcher) Classify(t *rules.Table, input string) (string, bool) {
	if input == "" {
		return "", false
	}

	for name, p := range t.All() {
		if p.IsEmpty() {
			continue
		}
		res, ok := m.Match(p.String(), input)
		if !ok {
			continue
		}
		if name == "" {
			return res.Text(), true
		}
		return name, true
	}
	return "", false
}

// Version resolves the version string of the named property.
// Each fragment of the property is tried in order with [VER] expanded into a
// capture group; the first non-empty capture wins.
func (m *Matcher) Version(name string, props *rules.Table, input string) (string, bool) {
	if name == "" || input == "" {
		return "", false
	}

	p, ok := props.Get(name)
	if !ok {
		return "", false
	}

	for _, frag := range p.Fragments() {
		expr := frag.String()
		if expr == "" {
			continue
		}
		expr = strings.ReplaceAll(expr, VersionPlaceholder, versionPattern)

		res, ok := m.Match(expr, input)
		if !ok {
			continue
		}
		if v := res.Group(1); v != "" {
			return v, true
		}
	}
	return "", false
}

// VersionFloat is Version followed by NormalizeVersion.
func (m *Matcher) VersionFloat(name string, props *rules.Table, input string) (float64, bool) {
	v, ok := m.Version(name, props, input)
	if !ok {
		return 0, false
	}
	return NormalizeVersion(v), true
}

var versionSeparators = strings.NewReplacer("_", ".", "+", ".", " ", ".", "/", ".")

// NormalizeVersion turns a raw version string into a number made of its first
// two segments: "12.34.5" is 12.34, "10_15_7" is 10.15. Strings without a
// leading number yield 0.
func NormalizeVersion(v string) float64 {
	v = versionSeparators.Replace(v)

	parts := strings.SplitN(v, ".", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return leadingFloat(strings.Join(parts, "."))
}

// leadingFloat parses the longest decimal prefix of s, ignoring leading
// whitespace. It returns 0 when s does not start with a number.
func leadingFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\r\n")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		frac := end + 1
		for frac < len(s) && isDigit(s[frac]) {
			frac++
			digits++
		}
		if frac > end+1 || digits > 0 {
			end = frac
		}
	}
	if digits == 0 {
		return 0
	}

	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return f
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
