// Package database handles database connections.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration. A sqlite driver is
// supported as well, used for local runs and tests.
//
// # Connect
//
// The Connect function establishes a connection to the database and verifies it
// with a ping. The returned handle is intentionally limited to a single open
// connection: integration runs process records strictly sequentially and reuse
// one connection across all store operations.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
