// Package db is a driver-agnostic database access core. It defines the
// process-wide driver registry that maps connection string schemes to
// pluggable driver implementations, and the result-cursor protocol every
// concrete driver satisfies: forward-only row advancement, strictly
// ascending typed column reads, a structured type-mismatch error taxonomy
// and deterministic release of the owning statement on close.
//
// Transport, SQL dialects, pooling and transactions belong to concrete
// drivers; this package only consumes their Connection, Statement and
// RowStream contracts.
package db
