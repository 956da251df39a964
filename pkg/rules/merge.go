package rules

// Merge combines tables left to right into a new table.
//
// For every rule: a name not yet present (or present with an empty value) is
// copied as-is; if the current value is a list the new value is appended as
// one more item; otherwise the new value is joined onto the current fragment
// with "|". Key order follows first appearance across the inputs.
// Nil tables are skipped and inputs are never modified.
func Merge(tables ...*Table) *Table {
	merged := NewTable()
	for _, t := range tables {
		for name, p := range t.All() {
			cur, ok := merged.Get(name)
			if !ok || cur.IsEmpty() {
				merged.Set(name, p)
				continue
			}
			merged.Set(name, cur.combine(p))
		}
	}
	return merged
}
