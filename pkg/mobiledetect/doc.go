// Package mobiledetect provides the baseline rule tables used by package
// useragent: phone devices, tablet devices, operating systems, browsers,
// version properties and utilities.
//
// The tables follow the well known Mobile_Detect rule set. They are curated,
// not exhaustive, and every call returns a fresh copy so callers can never
// modify the package data.
//
// Patterns are written for a backtracking engine with lookaround support
// (see github.com/dlclark/regexp2) and are matched case-insensitively with
// dot-all semantics. Property patterns use the [VER] placeholder for the
// version token to capture.
//
//	p := mobiledetect.New()
//	phones := p.PhoneDevices() // *rules.Table, "iPhone", "BlackBerry", ...
package mobiledetect
