package useragent

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/uadetect/pkg/logger"
)

// Agent is one agent string bound to a Detector.
// Single queries are computed from the bound input on every call. Summarize
// runs once and its result is reused.
type Agent struct {
	d              *Detector
	ua             string
	header         http.Header
	acceptLanguage string

	summaryOnce sync.Once
	summary     Summary
	signature   string
}

// AgentOption supplies optional request data to an Agent.
type AgentOption func(*Agent)

// WithHeader attaches request headers. Only the CloudFront viewer headers are
// consulted, and only when the agent string is CloudFrontAgent.
func WithHeader(h http.Header) AgentOption {
	return func(a *Agent) {
		a.header = h
	}
}

// WithAcceptLanguage attaches an Accept-Language header value.
func WithAcceptLanguage(header string) AgentOption {
	return func(a *Agent) {
		a.acceptLanguage = header
	}
}

// UserAgent returns the bound agent string.
func (a *Agent) UserAgent() string { return a.ua }

// Browser returns the name of the first matching browser rule.
func (a *Agent) Browser() (string, bool) {
	return a.d.matcher.Classify(a.d.browsers, a.ua)
}

// Platform returns the name of the first matching platform rule.
func (a *Agent) Platform() (string, bool) {
	return a.d.matcher.Classify(a.d.platforms, a.ua)
}

// Device returns the name of the first matching device rule.
func (a *Agent) Device() (string, bool) {
	return a.d.matcher.Classify(a.d.devices, a.ua)
}

// IsMobile reports whether the agent matches any phone, tablet, mobile
// platform or mobile browser rule.
func (a *Agent) IsMobile() bool {
	if v, ok := a.cloudFrontHint(HeaderCloudFrontMobile); ok && v {
		return true
	}
	_, ok := a.d.matcher.Classify(a.d.mobile, a.ua)
	return ok
}

// IsTablet reports whether the agent matches a tablet rule.
func (a *Agent) IsTablet() bool {
	if v, ok := a.cloudFrontHint(HeaderCloudFrontTablet); ok && v {
		return true
	}
	_, ok := a.d.matcher.Classify(a.d.tablets, a.ua)
	return ok
}

// IsDesktop reports whether the agent is neither mobile, tablet nor robot.
// For CloudFrontAgent the desktop viewer header decides when present.
func (a *Agent) IsDesktop() bool {
	if v, ok := a.cloudFrontHint(HeaderCloudFrontDesktop); ok {
		return v
	}
	return !a.IsMobile() && !a.IsTablet() && !a.IsRobot()
}

// IsPhone reports a mobile agent that is not a tablet.
func (a *Agent) IsPhone() bool {
	return a.IsMobile() && !a.IsTablet()
}

// IsRobot reports whether the crawler detector recognises the agent.
func (a *Agent) IsRobot() bool {
	_, ok := a.d.crawler.Detect(a.ua)
	return ok
}

// Robot returns the crawler signature with its first letter upper-cased.
func (a *Agent) Robot() (string, bool) {
	sig, ok := a.d.crawler.Detect(a.ua)
	if !ok {
		return "", false
	}
	return upperFirst(sig), true
}

// DeviceType returns the first of desktop, phone, tablet, robot that applies,
// or other.
func (a *Agent) DeviceType() string {
	switch {
	case a.IsDesktop():
		return DeviceTypeDesktop
	case a.IsPhone():
		return DeviceTypePhone
	case a.IsTablet():
		return DeviceTypeTablet
	case a.IsRobot():
		return DeviceTypeRobot
	default:
		return DeviceTypeOther
	}
}

// Version returns the raw version of a property such as "Chrome" or "iOS".
func (a *Agent) Version(property string) (string, bool) {
	return a.d.matcher.Version(property, a.d.properties, a.ua)
}

// VersionFloat returns the version of a property as a number.
func (a *Agent) VersionFloat(property string) (float64, bool) {
	return a.d.matcher.VersionFloat(property, a.d.properties, a.ua)
}

// Languages returns the bound Accept-Language tags ordered by preference.
func (a *Agent) Languages() []string {
	return ParseLanguages(a.acceptLanguage)
}

// Is reports whether the rule with the given name matches the agent.
// Rule names are compared case-insensitively. Unknown names yield false.
func (a *Agent) Is(rule string) bool {
	name, p, ok := a.d.extended.GetFold(rule)
	if !ok || p.IsEmpty() {
		return false
	}
	if !a.d.matcher.MatchString(p.String(), a.ua) {
		return false
	}
	a.d.log.Debug("rule matched", logger.Rule(name), logger.UserAgent(a.ua))
	return true
}

// Query evaluates a dynamic "isX" query such as "isIPhone" or "isAndroidOS".
// Names without the "is" prefix return ErrUnsupportedOperation.
func (a *Agent) Query(name string) (bool, error) {
	rule, ok := strings.CutPrefix(name, queryPrefix)
	if !ok {
		return false, errors.Join(ErrUnsupportedOperation, fmt.Errorf("method %q", name))
	}
	return a.Is(rule), nil
}

// Summary is a snapshot of every classification for one agent.
type Summary struct {
	UserAgent  string            `yaml:"user_agent" json:"user_agent"`
	DeviceType string            `yaml:"device_type" json:"device_type"`
	Device     string            `yaml:"device,omitempty" json:"device,omitempty"`
	Platform   string            `yaml:"platform,omitempty" json:"platform,omitempty"`
	Browser    string            `yaml:"browser,omitempty" json:"browser,omitempty"`
	Versions   map[string]string `yaml:"versions,omitempty" json:"versions,omitempty"`
	Robot      string            `yaml:"robot,omitempty" json:"robot,omitempty"`
	Languages  []string          `yaml:"languages,omitempty" json:"languages,omitempty"`
}

// Summarize evaluates every query once and caches the result, so middleware
// and handlers sharing an Agent classify it a single time. Versions are
// resolved for the detected platform and browser.
func (a *Agent) Summarize() Summary {
	a.summaryOnce.Do(func() { a.summary = a.summarize() })
	return a.summary
}

func (a *Agent) summarize() Summary {
	s := Summary{
		UserAgent:  a.ua,
		DeviceType: a.DeviceType(),
		Languages:  a.Languages(),
	}
	s.Device, _ = a.Device()
	s.Platform, _ = a.Platform()
	s.Browser, _ = a.Browser()
	if sig, ok := a.d.crawler.Detect(a.ua); ok {
		a.signature = sig
		s.Robot = upperFirst(sig)
	}

	for _, prop := range []string{s.Platform, s.Browser} {
		if prop == "" {
			continue
		}
		if v, ok := a.Version(prop); ok {
			if s.Versions == nil {
				s.Versions = make(map[string]string, 2)
			}
			s.Versions[prop] = v
		}
	}
	return s
}

// ShortIdentifier returns a short human-readable label.
// Format: Browser/Version (Platform, device type), or "Bot: Name" for crawlers.
func (a *Agent) ShortIdentifier() string {
	if name, ok := a.Robot(); ok {
		return "Bot: " + name
	}

	browser, hasBrowser := a.Browser()
	platform, hasPlatform := a.Platform()
	deviceType := a.DeviceType()

	switch {
	case !hasBrowser && !hasPlatform:
		return "Unknown device"
	case !hasBrowser:
		return fmt.Sprintf("%s %s", platform, deviceType)
	case !hasPlatform:
		platform = "Unknown OS"
	}

	if v, ok := a.Version(browser); ok {
		browser += "/" + v
	}
	return fmt.Sprintf("%s (%s, %s)", browser, platform, deviceType)
}

// robotLabel returns a bounded name for the detected crawler: the lower-cased
// signature when the crawler detector lists it by name, GenericRobot otherwise.
// It must be called after Summarize.
func (a *Agent) robotLabel() string {
	if a.signature == "" {
		return ""
	}
	if c, ok := a.d.crawler.(SignatureCatalog); ok && c.Known(a.signature) {
		return strings.ToLower(a.signature)
	}
	return GenericRobot
}

// cloudFrontHint reads a CloudFront viewer header. ok is false unless the
// agent is CloudFrontAgent and the header is present.
func (a *Agent) cloudFrontHint(header string) (value, ok bool) {
	if a.ua != CloudFrontAgent || a.header == nil {
		return false, false
	}
	vals := a.header.Values(header)
	if len(vals) == 0 {
		return false, false
	}
	return vals[0] == "true", true
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	// a Caser is stateful, so one per call
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}
