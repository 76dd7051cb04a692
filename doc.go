// Package go4sqlite wraps the SQLite C library with connection, prepared
// statement, and resultset abstractions.
//
// The engine itself (SQL execution, storage, transactions) is entirely
// SQLite's; this package is the ergonomic layer on top: typed parameter
// binding, typed column extraction, and strict ownership of the native
// handles. A Connection owns one database handle, a PreparedStatement owns
// one compiled statement handle, and a Resultset borrows the statement it
// iterates and must not outlive it.
//
// All operations are blocking and run on the calling goroutine. A single
// Connection and everything derived from it must not be used from multiple
// goroutines concurrently unless the database was opened with an explicit
// threading mode flag.
package go4sqlite
