package crawler

import (
	"errors"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

const defaultMatchTimeout = 100 * time.Millisecond

// Detector decides whether an agent string belongs to an automated client.
// It is immutable and safe for concurrent use.
type Detector struct {
	signatures *regexp2.Regexp
	named      *regexp2.Regexp
	exclusions *regexp2.Regexp
}

// Option configures a Detector.
type Option func(*config)

type config struct {
	signatures []string
	exclusions []string
	timeout    time.Duration
}

// WithSignatures adds crawler signatures checked before the built-in ones.
// Empty strings are ignored.
func WithSignatures(patterns ...string) Option {
	return func(c *config) {
		extra := make([]string, 0, len(patterns))
		for _, p := range patterns {
			if p != "" {
				extra = append(extra, p)
			}
		}
		c.signatures = append(extra, c.signatures...)
	}
}

// WithExclusions adds patterns stripped from the agent string before matching.
func WithExclusions(patterns ...string) Option {
	return func(c *config) {
		for _, p := range patterns {
			if p != "" {
				c.exclusions = append(c.exclusions, p)
			}
		}
	}
}

// WithMatchTimeout bounds a single regular expression evaluation.
// Non-positive values are ignored.
func WithMatchTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New compiles the signature and exclusion sets.
func New(opts ...Option) (*Detector, error) {
	cfg := &config{
		signatures: append([]string(nil), signatures...),
		exclusions: append([]string(nil), exclusions...),
		timeout:    defaultMatchTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	sig, err := compile(append(cfg.signatures, genericSignature), cfg.timeout)
	if err != nil {
		return nil, errors.Join(ErrInvalidSignature, err)
	}
	named, err := compile([]string{"^(?:" + strings.Join(cfg.signatures, "|") + ")$"}, cfg.timeout)
	if err != nil {
		return nil, errors.Join(ErrInvalidSignature, err)
	}
	excl, err := compile(cfg.exclusions, cfg.timeout)
	if err != nil {
		return nil, errors.Join(ErrInvalidExclusion, err)
	}
	return &Detector{signatures: sig, named: named, exclusions: excl}, nil
}

// MustNew is like New but panics on invalid patterns.
func MustNew(opts ...Option) *Detector {
	d, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Detect reports whether ua is a crawler and returns the matched signature
// text as it appears in ua.
func (d *Detector) Detect(ua string) (string, bool) {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return "", false
	}

	cleaned, err := d.exclusions.Replace(ua, "", -1, -1)
	if err != nil {
		// Timed out while cleaning, fall back to the raw string.
		cleaned = ua
	}
	if strings.TrimSpace(cleaned) == "" {
		return "", false
	}

	m, err := d.signatures.FindStringMatch(cleaned)
	if err != nil || m == nil {
		return "", false
	}
	return m.String(), true
}

// Known reports whether signature, as returned by Detect, is one of the named
// signatures rather than a generic suffix match such as "acmebot".
func (d *Detector) Known(signature string) bool {
	if signature == "" {
		return false
	}
	ok, err := d.named.MatchString(signature)
	return err == nil && ok
}

// IsCrawler reports whether ua is a crawler.
func (d *Detector) IsCrawler(ua string) bool {
	_, ok := d.Detect(ua)
	return ok
}

func compile(patterns []string, timeout time.Duration) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile("("+strings.Join(patterns, "|")+")", regexp2.IgnoreCase)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = timeout
	return re, nil
}
