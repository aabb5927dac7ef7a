// Package linkcheck validates the links of a local HTML documentation tree.
// Starting from one document it follows local file links, probes remote
// URLs, and reports every invalid reference together with the documents
// that contain it.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package linkcheck
