// Package trellodoc converts the Trello HTML API documentation into a
// machine-readable JSON descriptor: an ordered collection of method records
// (HTTP verb, URL path template, required/optional parameter lists, and
// auxiliary parameter metadata).
//
// This package contains domain types, the pure pipeline stages (name
// rewriting, path scanning, parameter merging, ordering, assembly), and
// interfaces following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// goquery/, http/).
package trellodoc
