// Package database handles database connections, migrations and schema inspection.
//
// It wraps GORM to configure either a MySQL connection (production) or a
// sqlite database (embedded mode and tests) from the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and pings the
// server within the configured timeout. sqlite connections are limited to a
// single open connection.
//
// # Schema Inspection
//
// GetTableColumns and ColumnSet read the live table definition (SHOW COLUMNS
// on MySQL, PRAGMA table_info on sqlite). The integrity feature compares them
// against the record models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "animals")
package database
