// Package useragent classifies HTTP User-Agent strings with ordered regular
// expression rule tables.
//
// It identifies:
//   - Device type: desktop, phone, tablet, robot or other
//   - Device: iPhone, iPad, Samsung, Macintosh, ... (first matching rule)
//   - Platform: Windows, OS X, AndroidOS, iOS, Ubuntu, ChromeOS, ...
//   - Browser: Chrome, Firefox, Safari, Edge, Opera, ...
//   - Versions of named properties: "Chrome", "iOS", "Windows NT", ...
//   - Crawlers and their names via a pluggable CrawlerDetector
//
// It also ranks Accept-Language preferences.
//
// # Architecture
//
// Rule tables (package rules) map rule names to patterns in evaluation order.
// A Detector merges the baseline tables of a Provider (package mobiledetect by
// default) with Extensions once, at construction, and is immutable afterwards.
// Every query goes through a Matcher, which compiles patterns case-insensitively
// with github.com/dlclark/regexp2, caches them in a bounded LRU and returns
// match results to the caller instead of storing them.
//
//	 agent string ┌──────────┐ Classify ┌──────────────────────┐
//	─────────────▶│  Agent   │─────────▶│ Matcher + rule table │──► rule name
//	              └──────────┘          └──────────────────────┘
//	                   │ Version(prop)  ┌──────────────────────┐
//	                   └───────────────▶│ Properties  ([VER])  │──► "12.34.5"
//	                                    └──────────────────────┘
//
// # Usage
//
//	d, err := useragent.New()
//	if err != nil {
//	    return err
//	}
//
//	a := d.Parse(r.UserAgent(), useragent.WithAcceptLanguage(r.Header.Get("Accept-Language")))
//	switch a.DeviceType() {
//	case useragent.DeviceTypePhone:
//	    // serve the mobile layout
//	}
//
//	browser, _ := a.Browser()        // "Chrome"
//	ver, _ := a.VersionFloat(browser) // 91.0
//	isIPhone, err := a.Query("isIPhone")
//
// Dynamic queries must start with "is"; anything else returns
// ErrUnsupportedOperation.
//
// # HTTP integration
//
// Middleware stores an *Agent in the request context:
//
//	r := chi.NewRouter()
//	r.Use(useragent.Middleware(d, useragent.WithMetrics(m)))
//	r.Get("/", handler)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    if a := useragent.FromContext(r.Context()); a != nil && a.IsRobot() {
//	        // ...
//	    }
//	}
//
// Metrics summarize each Agent once; SummaryHandler and later Summarize calls
// reuse that result. Crawlers are labelled by their lower-cased signature when
// the crawler detector knows it by name (see SignatureCatalog), and as
// GenericRobot otherwise.
//
// # Configuration
//
// LoadConfig reads UA_EXTENSIONS_FILE, UA_PATTERN_CACHE_SIZE, UA_MATCH_TIMEOUT,
// UA_LOG_LEVEL and UA_LOG_FORMAT from the environment and optional .env files.
// Extension files are YAML documents with desktop_devices, operating_systems,
// browsers and properties sections; see LoadExtensions.
//
// # Error Handling
//
// Missing classifications are reported with a false boolean, never an error.
// Invalid patterns and match timeouts are logged at WARN and count as no match.
// Construction errors are sentinel values joined with their cause:
//
//	if errors.Is(err, useragent.ErrInvalidExtensions) {
//	    // bad YAML
//	}
package useragent
