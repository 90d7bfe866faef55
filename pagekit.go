// Package pagekit imports landing pages into an editable, typed page model
// and regenerates standalone HTML and CSS from that model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, template/).
package pagekit
