// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that
// configures MySQL connections for production and pure-Go SQLite for tests
// and single-binary deployments.
//
// # Connect
//
// The generic Connect function establishes a connection based on the
// configured driver. Migrate applies the GORM auto-migration for the
// inventory and users tables at startup.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, used by the
// status command to verify that the inventory and users tables match the
// expected layout on both backends.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "inventory")
package database
