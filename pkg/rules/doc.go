// Package rules provides the data model for named pattern rules: an ordered
// Table mapping rule names to regular expression fragments, and Merge, which
// combines any number of tables with a fixed collision policy.
//
// A Pattern is either a single fragment or an ordered list of alternatives.
// Patterns are plain text; compiling and matching them is left to the caller
// (see package useragent).
//
// # Merging
//
// Merge walks its inputs left to right. A rule name seen for the first time
// is copied as-is. When the name already exists, a list value gets the new
// value appended as one more item, and a scalar value gets the new fragment
// joined with "|":
//
//	a := rules.NewTable(rules.R("Opera", "Opera|OPR"))
//	b := rules.NewTable(rules.R("Opera", `Opera.*Mini`))
//	m := rules.Merge(a, b)
//	p, _ := m.Get("Opera") // "Opera|OPR|Opera.*Mini"
//
// The order of the inputs decides the order of alternatives and of keys; it
// does not decide which rule wins at classification time. That is the job of
// the classifier walking the merged table in order.
//
// # YAML
//
// Table and Pattern implement yaml.Marshaler and yaml.Unmarshaler on top of
// yaml.Node, so rule files keep their document order:
//
//	browsers:
//	  Opera Mini: Opera Mini
//	  IE: [MSIE, IEMobile, "Trident/[.0-9]+"]
//
// Decoding errors wrap ErrInvalidTable or ErrInvalidPattern.
package rules
