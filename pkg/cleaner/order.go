package cleaner

// FinalOrder merges the catalog's tables with a required prefix order.
//
// With a nil order the catalog order is returned unchanged. Otherwise the
// result starts with a copy of order and every catalog table not already
// present follows in catalog order. Order entries the catalog does not know
// about are kept. Neither input is modified.
//
// Example:
//
//	FinalOrder([]string{"users", "posts", "tags"}, []string{"posts"})
//	// [posts users tags]
func FinalOrder(tables, order []string) []string {
	if order == nil {
		return tables
	}

	final := make([]string, 0, len(order)+len(tables))
	final = append(final, order...)

	seen := make(map[string]struct{}, cap(final))
	for _, name := range order {
		seen[name] = struct{}{}
	}

	for _, name := range tables {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		final = append(final, name)
	}

	return final
}

// FilterUnknown splits order into the entries present in tables and the
// ones that are not. A nil order stays nil.
func FilterUnknown(order, tables []string) (known, unknown []string) {
	if order == nil {
		return nil, nil
	}

	present := make(map[string]struct{}, len(tables))
	for _, name := range tables {
		present[name] = struct{}{}
	}

	known = make([]string, 0, len(order))
	for _, name := range order {
		if _, ok := present[name]; ok {
			known = append(known, name)
			continue
		}

		unknown = append(unknown, name)
	}

	return known, unknown
}
