package useragent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/uadetect/pkg/crawler"
	"github.com/dmitrymomot/uadetect/pkg/logger"
	"github.com/dmitrymomot/uadetect/pkg/mobiledetect"
	"github.com/dmitrymomot/uadetect/pkg/rules"
)

// Detector owns the rule tables and classifies agent strings.
// It is immutable after New and safe for concurrent use.
type Detector struct {
	provider Provider
	crawler  CrawlerDetector
	matcher  *Matcher
	log      *slog.Logger

	tablets    *rules.Table
	browsers   *rules.Table
	platforms  *rules.Table
	devices    *rules.Table
	properties *rules.Table
	mobile     *rules.Table
	extended   *rules.Table
}

type options struct {
	provider     Provider
	crawler      CrawlerDetector
	log          *slog.Logger
	extensions   Extensions
	extra        []Extensions
	cacheSize    int
	matchTimeout time.Duration
}

// Option configures a Detector.
type Option func(*options)

// WithProvider replaces the baseline rule provider.
func WithProvider(p Provider) Option {
	return func(o *options) {
		if p != nil {
			o.provider = p
		}
	}
}

// WithCrawlerDetector replaces the crawler detector.
func WithCrawlerDetector(c CrawlerDetector) Option {
	return func(o *options) {
		if c != nil {
			o.crawler = c
		}
	}
}

// WithLogger sets the logger. Defaults to a logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithExtensions replaces the built-in extension tables.
func WithExtensions(ext Extensions) Option {
	return func(o *options) {
		o.extensions = ext.normalize()
	}
}

// WithExtraExtensions merges ext after the configured extension tables.
func WithExtraExtensions(ext Extensions) Option {
	return func(o *options) {
		o.extra = append(o.extra, ext.normalize())
	}
}

// WithCacheSize bounds the compiled pattern cache.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}

// WithTimeout bounds a single pattern evaluation.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.matchTimeout = d
		}
	}
}

// New builds a Detector. Merged rule tables are computed once here.
func New(opts ...Option) (*Detector, error) {
	o := options{
		extensions:   DefaultExtensions(),
		cacheSize:    defaultPatternCacheSize,
		matchTimeout: defaultMatchTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Discard()
	}
	if o.provider == nil {
		o.provider = mobiledetect.New()
	}
	if o.crawler == nil {
		c, err := crawler.New(crawler.WithMatchTimeout(o.matchTimeout))
		if err != nil {
			return nil, errors.Join(ErrCrawlerDetector, err)
		}
		o.crawler = c
	}

	ext := o.extensions
	for _, e := range o.extra {
		ext = ext.Merge(e)
	}

	log := o.log.With(logger.Component("useragent"))

	var (
		phones    = o.provider.PhoneDevices()
		tablets   = o.provider.TabletDevices()
		os        = o.provider.OperatingSystems()
		browsers  = o.provider.Browsers()
		utilities = o.provider.Utilities()
	)

	d := &Detector{
		provider: o.provider,
		crawler:  o.crawler,
		log:      log,
		matcher: NewMatcher(
			WithPatternCacheSize(o.cacheSize),
			WithMatchTimeout(o.matchTimeout),
			WithMatcherLogger(log),
		),
		tablets:    tablets,
		browsers:   rules.Merge(ext.Browsers, browsers),
		platforms:  rules.Merge(os, ext.OperatingSystems),
		devices:    rules.Merge(ext.DesktopDevices, phones, tablets, utilities),
		properties: rules.Merge(ext.Properties, o.provider.Properties()),
		mobile:     rules.Merge(phones, tablets, os, browsers),
		extended: rules.Merge(
			ext.DesktopDevices,
			phones,
			tablets,
			os,
			ext.OperatingSystems,
			browsers,
			ext.Browsers,
			utilities,
		),
	}

	log.Debug("detector ready",
		logger.Table("browsers", d.browsers.Len()),
		logger.Table("platforms", d.platforms.Len()),
		logger.Table("devices", d.devices.Len()),
		logger.Table("properties", d.properties.Len()),
		logger.Table("extended", d.extended.Len()),
	)

	return d, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Detector {
	d, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse binds ua to the detector for per-request queries.
func (d *Detector) Parse(ua string, opts ...AgentOption) *Agent {
	a := &Agent{d: d, ua: ua}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FromRequest binds the User-Agent, Accept-Language and CloudFront viewer
// headers of r.
func (d *Detector) FromRequest(r *http.Request) *Agent {
	return d.Parse(r.UserAgent(),
		WithHeader(r.Header),
		WithAcceptLanguage(r.Header.Get("Accept-Language")),
	)
}

// Matcher returns the detector's matcher.
func (d *Detector) Matcher() *Matcher { return d.matcher }

// Browsers returns extension browsers merged with baseline browsers.
// The returned tables are shared and must not be modified.
func (d *Detector) Browsers() *rules.Table { return d.browsers }

// Platforms returns baseline operating systems merged with extension ones.
func (d *Detector) Platforms() *rules.Table { return d.platforms }

// Devices returns desktop, phone, tablet and utility rules.
func (d *Detector) Devices() *rules.Table { return d.devices }

// Properties returns the version patterns keyed by property name.
func (d *Detector) Properties() *rules.Table { return d.properties }

// MobileRules returns the rules used by IsMobile.
func (d *Detector) MobileRules() *rules.Table { return d.mobile }

// ExtendedRules returns every rule addressable through Agent.Is.
func (d *Detector) ExtendedRules() *rules.Table { return d.extended }

// TabletRules returns the baseline tablet devices.
func (d *Detector) TabletRules() *rules.Table { return d.tablets }
