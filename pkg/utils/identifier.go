package utils

import "strings"

// QuoteIdentifier wraps name in the quote character q, doubling any
// occurrence of q inside the name. The name is treated as a single
// identifier: dots are not split into qualified parts.
//
// Examples:
//   - ("users", '"') -> "\"users\""
//   - ("Mixed Case", '"') -> "\"Mixed Case\""
//   - ("we\"ird", '"') -> "\"we\"\"ird\""
//   - ("users", '`') -> "`users`"
//   - ("", '"') -> ""
func QuoteIdentifier(name string, q byte) string {
	if name == "" {
		return ""
	}

	quote := string(q)

	var b strings.Builder
	b.Grow(len(name) + 2)
	b.WriteString(quote)
	b.WriteString(strings.ReplaceAll(name, quote, quote+quote))
	b.WriteString(quote)

	return b.String()
}

// BacktickIdentifier quotes an identifier the MySQL way.
//
// Examples:
//   - "table" -> "`table`"
//   - "my`table" -> "`my``table`"
func BacktickIdentifier(name string) string {
	return QuoteIdentifier(name, '`')
}

// DoubleQuoteIdentifier quotes an identifier the ANSI way, as PostgreSQL
// and SQLite expect.
//
// Examples:
//   - "table" -> "\"table\""
//   - "Users" -> "\"Users\"" (case is preserved by the server)
func DoubleQuoteIdentifier(name string) string {
	return QuoteIdentifier(name, '"')
}
