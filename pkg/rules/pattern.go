package rules

import "strings"

// Pattern holds one regular expression fragment or an ordered list of
// alternatives. List items may themselves be lists: merging a list-valued rule
// with another list-valued rule appends the second list as a single item.
type Pattern struct {
	expr  string
	items []Pattern
	list  bool
}

// Expr returns a scalar pattern.
func Expr(expr string) Pattern {
	return Pattern{expr: expr}
}

// List returns a list pattern of scalar alternatives.
func List(exprs ...string) Pattern {
	items := make([]Pattern, len(exprs))
	for i, e := range exprs {
		items[i] = Expr(e)
	}
	return Pattern{items: items, list: true}
}

// ListOf returns a list pattern built from arbitrary items.
func ListOf(items ...Pattern) Pattern {
	return Pattern{items: append([]Pattern(nil), items...), list: true}
}

// IsList reports whether the pattern is list-valued.
func (p Pattern) IsList() bool { return p.list }

// Expr returns the scalar fragment. It is empty for list patterns.
func (p Pattern) Expr() string { return p.expr }

// Items returns a copy of the list items. Nil for scalar patterns.
func (p Pattern) Items() []Pattern {
	if !p.list {
		return nil
	}
	return append([]Pattern(nil), p.items...)
}

// IsEmpty reports whether the pattern can never be evaluated:
// an empty scalar or a list without a single non-empty item.
func (p Pattern) IsEmpty() bool {
	if !p.list {
		return p.expr == ""
	}
	for _, it := range p.items {
		if !it.IsEmpty() {
			return false
		}
	}
	return true
}

// String joins all non-empty alternatives with "|".
// Empty items are dropped so that they never turn into an always-matching
// empty alternative.
func (p Pattern) String() string {
	if !p.list {
		return p.expr
	}
	parts := make([]string, 0, len(p.items))
	for _, it := range p.items {
		if s := it.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "|")
}

// Fragments normalizes the pattern to a list: a scalar becomes a single
// element list, a list returns its items in order.
func (p Pattern) Fragments() []Pattern {
	if !p.list {
		return []Pattern{p}
	}
	return p.Items()
}

// Equal reports whether two patterns have the same shape and content.
func (p Pattern) Equal(o Pattern) bool {
	if p.list != o.list || p.expr != o.expr || len(p.items) != len(o.items) {
		return false
	}
	for i := range p.items {
		if !p.items[i].Equal(o.items[i]) {
			return false
		}
	}
	return true
}

// combine applies the merge collision policy to an existing value.
// The receiver is never mutated.
func (p Pattern) combine(next Pattern) Pattern {
	if p.list {
		items := make([]Pattern, 0, len(p.items)+1)
		items = append(items, p.items...)
		items = append(items, next)
		return Pattern{items: items, list: true}
	}
	return Expr(p.expr + "|" + next.String())
}
