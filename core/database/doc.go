// Package database manages the MySQL connection for the catalog store.
//
// Connect builds a DSN with explicit connection and I/O timeouts, configures
// the connection pool, and pings the server before handing the connection
// back. Reconciliation treats an unreachable store at startup as fatal, so
// failures here abort the run before any row is processed.
package database
