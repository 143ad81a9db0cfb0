// Package views renders application paths as terminal output. Public pages
// are static text; protected pages fetch from the REST API and print tables.
// Views are read-only and never decide access; the caller runs the gate first.
package views
