// Package crawler detects automated clients (search engine crawlers, link
// preview fetchers, monitoring probes, HTTP libraries) from their agent
// string.
//
// Detection works in two steps. Ordinary browser tokens such as
// "Mozilla/5.0", "Safari/537.36" or "KHTML, like Gecko" are stripped first,
// then the remainder is tested against a single compiled alternation of known
// signatures followed by a generic suffix rule ("...bot", "...spider",
// "...crawler" and friends). The text that matched is returned as the
// signature:
//
//	d := crawler.MustNew()
//	sig, ok := d.Detect("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
//	// sig == "Googlebot", ok == true
//
// Extra signatures and exclusions can be supplied with WithSignatures and
// WithExclusions. A Detector is immutable and safe for concurrent use.
package crawler
