// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure the connection to the WordPress database that
// holds the order line-item tables. MySQL is the production driver; postgres
// and sqlite dialectors are available for alternative deployments and tests.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and pings the
// server so misconfiguration surfaces at startup rather than on first save.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table (SHOW COLUMNS on MySQL,
// PRAGMA table_info on sqlite). The integrity feature uses it to verify that the
// item tables carry the expected column set.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "wp_ktp_order_invoice_items")
package database
