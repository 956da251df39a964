package useragent

import "github.com/dmitrymomot/uadetect/pkg/rules"

// Provider supplies the baseline rule tables. Each method must return a table
// the caller may keep; the Detector never mutates them.
type Provider interface {
	PhoneDevices() *rules.Table
	TabletDevices() *rules.Table
	OperatingSystems() *rules.Table
	Browsers() *rules.Table
	Properties() *rules.Table
	Utilities() *rules.Table
}

// CrawlerDetector recognises automated clients.
type CrawlerDetector interface {
	// Detect reports whether ua is a crawler and the matched signature.
	Detect(ua string) (signature string, ok bool)
}

// SignatureCatalog is implemented by crawler detectors that can tell a named
// signature from a generic match. Metrics use it to keep robot labels bounded.
type SignatureCatalog interface {
	Known(signature string) bool
}
