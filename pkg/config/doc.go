// Package config loads dbcleaner.yaml.
//
// A configuration file looks like:
//
//	database:
//	  dialect: postgresql
//	  url: ${DATABASE_URL}
//	  max_open_conns: 4
//	clean:
//	  mode: truncate
//	  ignore_tables: [schema_migrations]
//	  order: [comments, posts]
//	  unknown_order: keep
//	logging:
//	  level: info
//	  format: text
//
// Every key is optional. Command line flags take precedence over the file.
package config
