package useragent

import (
	"log/slog"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/dmitrymomot/uadetect/pkg/logger"
)

const (
	defaultPatternCacheSize = 512
	defaultMatchTimeout     = 100 * time.Millisecond
)

// Match is the result of a successful pattern evaluation.
// Groups[0] is the full match, Groups[i] the i-th capture group ("" when the
// group did not participate).
type Match struct {
	Pattern string
	Groups  []string
}

// Text returns the full match.
func (m Match) Text() string { return m.Group(0) }

// Group returns the i-th capture or "" when out of range.
func (m Match) Group(i int) string {
	if i < 0 || i >= len(m.Groups) {
		return ""
	}
	return m.Groups[i]
}

// Matcher evaluates rule patterns against agent strings.
// Patterns are case-insensitive, dot matches newline, and unanchored.
// A Matcher is safe for concurrent use; results are returned, never stored.
type Matcher struct {
	cache   *patternCache
	timeout time.Duration
	log     *slog.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithPatternCacheSize bounds the number of compiled patterns kept in memory.
func WithPatternCacheSize(n int) MatcherOption {
	return func(m *Matcher) {
		if n > 0 {
			m.cache = newPatternCache(n)
		}
	}
}

// WithMatchTimeout bounds a single pattern evaluation. A pattern that runs
// longer is treated as not matching.
func WithMatchTimeout(d time.Duration) MatcherOption {
	return func(m *Matcher) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithMatcherLogger sets the logger used to report broken patterns.
func WithMatcherLogger(l *slog.Logger) MatcherOption {
	return func(m *Matcher) {
		if l != nil {
			m.log = l
		}
	}
}

// NewMatcher creates a Matcher.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{
		cache:   newPatternCache(defaultPatternCacheSize),
		timeout: defaultMatchTimeout,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match evaluates pattern against input. Empty input or pattern never match.
// Invalid patterns and evaluation timeouts are logged and reported as no match.
func (m *Matcher) Match(pattern, input string) (Match, bool) {
	if pattern == "" || input == "" {
		return Match{}, false
	}

	re := m.compile(pattern)
	if re == nil {
		return Match{}, false
	}

	res, err := re.FindStringMatch(input)
	if err != nil {
		m.log.Warn("pattern evaluation failed",
			logger.Pattern(pattern),
			logger.UserAgent(input),
			logger.Error(err),
		)
		return Match{}, false
	}
	if res == nil {
		return Match{}, false
	}

	groups := res.Groups()
	out := Match{Pattern: pattern, Groups: make([]string, len(groups))}
	for i := range groups {
		out.Groups[i] = groups[i].String()
	}
	return out, true
}

// MatchString reports whether pattern matches input.
func (m *Matcher) MatchString(pattern, input string) bool {
	_, ok := m.Match(pattern, input)
	return ok
}

func (m *Matcher) compile(pattern string) *regexp2.Regexp {
	if c, ok := m.cache.get(pattern); ok {
		return c.re
	}

	re, err := regexp2.Compile(pattern, regexp2.IgnoreCase|regexp2.Singleline)
	if err != nil {
		m.log.Warn("invalid pattern", logger.Pattern(pattern), logger.Error(err))
		re = nil
	} else {
		re.MatchTimeout = m.timeout
	}
	m.cache.put(&compiled{pattern: pattern, re: re, err: err})
	return re
}
