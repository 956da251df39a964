package rules

import (
	"iter"
	"strings"
)

// Rule is a single named entry of a Table.
type Rule struct {
	Name    string
	Pattern Pattern
}

// R is shorthand for a scalar rule.
func R(name, expr string) Rule {
	return Rule{Name: name, Pattern: Expr(expr)}
}

// L is shorthand for a list-valued rule.
func L(name string, exprs ...string) Rule {
	return Rule{Name: name, Pattern: List(exprs...)}
}

// Table is an ordered mapping of rule names to patterns.
// Insertion order is the evaluation priority.
// A Table is not safe for concurrent mutation; tables handed out by a
// detector are treated as read-only.
type Table struct {
	names []string
	index map[string]int
	rules []Pattern
}

// NewTable builds a table from rules in the given order.
// A repeated name replaces the earlier value and keeps its position.
func NewTable(rules ...Rule) *Table {
	t := &Table{index: make(map[string]int, len(rules))}
	for _, r := range rules {
		t.Set(r.Name, r.Pattern)
	}
	return t
}

// Set adds or replaces a rule.
func (t *Table) Set(name string, p Pattern) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[name]; ok {
		t.rules[i] = p
		return
	}
	t.index[name] = len(t.names)
	t.names = append(t.names, name)
	t.rules = append(t.rules, p)
}

// Get returns the pattern stored under name.
func (t *Table) Get(name string) (Pattern, bool) {
	if t == nil {
		return Pattern{}, false
	}
	i, ok := t.index[name]
	if !ok {
		return Pattern{}, false
	}
	return t.rules[i], true
}

// GetFold looks a rule up ignoring case. An exact match is preferred,
// otherwise the first name in table order that matches wins. Folding a PHP
// array's keys keeps the last duplicate instead, so tables whose names differ
// only by case may resolve differently.
func (t *Table) GetFold(name string) (string, Pattern, bool) {
	if t == nil {
		return "", Pattern{}, false
	}
	if p, ok := t.Get(name); ok {
		return name, p, true
	}
	for i, n := range t.names {
		if strings.EqualFold(n, name) {
			return n, t.rules[i], true
		}
	}
	return "", Pattern{}, false
}

// Len returns the number of rules.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Names returns rule names in order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.names...)
}

// All iterates rules in insertion order.
func (t *Table) All() iter.Seq2[string, Pattern] {
	return func(yield func(string, Pattern) bool) {
		if t == nil {
			return
		}
		for i, n := range t.names {
			if !yield(n, t.rules[i]) {
				return
			}
		}
	}
}

// Rules returns the table as a rule slice.
func (t *Table) Rules() []Rule {
	out := make([]Rule, 0, t.Len())
	for n, p := range t.All() {
		out = append(out, Rule{Name: n, Pattern: p})
	}
	return out
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	return NewTable(t.Rules()...)
}
