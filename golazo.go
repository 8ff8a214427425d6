// Package golazo scrapes football results, standings, team profiles, match
// boxscores and stream links from third-party sports sites and re-exposes
// them as JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/).
package golazo

// Unknown is the placeholder used for match identifiers and team names the
// source page does not carry.
const Unknown = "Unknown"
