package utils

import "strings"

// SQLBuilder provides a fluent interface for building the statements the
// cleaner emits. Table names are passed in already quoted because quoting
// depends on the dialect.
//
// Example usage:
//
//	sql := NewSQLBuilder().
//		Truncate().
//		Tables(`"a"`, `"b"`).
//		Cascade().
//		String()
//	// Output: TRUNCATE "a","b" CASCADE
type SQLBuilder struct {
	parts []string
}

// NewSQLBuilder creates a new SQLBuilder instance.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{
		parts: make([]string, 0, 4),
	}
}

// Truncate adds a TRUNCATE keyword.
//
// Example:
//
//	builder.Truncate().Table("`users`")  // TRUNCATE TABLE `users`
func (b *SQLBuilder) Truncate() *SQLBuilder {
	b.parts = append(b.parts, "TRUNCATE")
	return b
}

// Table adds a TABLE keyword followed by a single quoted name.
func (b *SQLBuilder) Table(quoted string) *SQLBuilder {
	if quoted != "" {
		b.parts = append(b.parts, "TABLE", quoted)
	}
	return b
}

// Tables adds a comma separated list of quoted names with no padding.
//
// Example:
//
//	builder.Tables(`"a"`, `"b"`)  // "a","b"
func (b *SQLBuilder) Tables(quoted ...string) *SQLBuilder {
	if len(quoted) > 0 {
		b.parts = append(b.parts, strings.Join(quoted, ","))
	}
	return b
}

// Cascade adds a CASCADE clause.
func (b *SQLBuilder) Cascade() *SQLBuilder {
	b.parts = append(b.parts, "CASCADE")
	return b
}

// DeleteFrom adds an unconditional DELETE FROM clause.
//
// Example:
//
//	builder.DeleteFrom(`"users"`)  // DELETE FROM "users"
func (b *SQLBuilder) DeleteFrom(quoted string) *SQLBuilder {
	b.parts = append(b.parts, "DELETE", "FROM", quoted)
	return b
}

// Set adds a session variable assignment. No spaces surround the equals
// sign.
//
// Example:
//
//	builder.Set("FOREIGN_KEY_CHECKS", "0")  // SET FOREIGN_KEY_CHECKS=0
func (b *SQLBuilder) Set(variable, value string) *SQLBuilder {
	b.parts = append(b.parts, "SET", variable+"="+value)
	return b
}

// String builds the statement. No trailing semicolon is added since every
// statement is sent to the driver on its own.
func (b *SQLBuilder) String() string {
	return strings.Join(b.parts, " ")
}
