// Package manifest reads, patches, and encodes the Cargo-style TOML manifests
// the reconciler edits: the workspace manifest (workspace.members) and the two
// aggregator manifests whose [dependencies] re-export active plugins.
//
// Documents are decoded into generic tables so every key the reconciler does
// not own survives a round trip. Encoding is deterministic (sorted keys), which
// keeps repeated runs byte-identical.
package manifest
