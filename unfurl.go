// Package unfurl extracts structured metadata from web pages. Given a URL it
// fetches the document once, runs prioritized extraction rules for the
// well-known fields (title, description, image, author, date, publisher and
// friends), sweeps the document for Open Graph, Twitter Card and generic meta
// tags, resolves relative references against the final fetched URL, and
// returns everything as one flat record.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, opengraph/).
package unfurl
