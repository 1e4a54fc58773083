// Package submission models applicant form submissions returned by the
// backend and implements the in-memory query engine behind the dashboard:
// search, country and date filters, AIP-160 advanced filters, AIP-132
// ordering, fixed-size pagination and CSV export.
//
// Records are treated as opaque. The package never mutates the slices it is
// given.
package submission
