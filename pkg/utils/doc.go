// Package utils provides the identifier quoting and statement building
// helpers shared by the dialect and cleaner packages.
//
// # Identifier Utilities (identifier.go)
//
// Table names come straight from database metadata and may contain mixed
// case, spaces, dots or quote characters. Each name is quoted as a single
// identifier and embedded quote characters are doubled:
//
//	utils.BacktickIdentifier("users")       // `users`
//	utils.DoubleQuoteIdentifier("Users")    // "Users"
//	utils.DoubleQuoteIdentifier(`we"ird`)   // "we""ird"
//
// # SQL Builder (sqlbuilder.go)
//
// SQLBuilder assembles the handful of statement shapes the cleaner emits.
// The output text is compared verbatim by drivers and tests, so the builder
// never adds a trailing semicolon:
//
//	utils.NewSQLBuilder().Truncate().Tables(`"a"`, `"b"`).Cascade().String()
//	// TRUNCATE "a","b" CASCADE
//
//	utils.NewSQLBuilder().Set("FOREIGN_KEY_CHECKS", "0").String()
//	// SET FOREIGN_KEY_CHECKS=0
package utils
