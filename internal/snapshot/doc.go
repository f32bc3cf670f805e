// Package snapshot persists the last successfully applied build configuration
// and the plain driver list consumed by the downstream build step.
// Snapshots let incremental runs diff against what was actually applied
// rather than against what the manifests happen to contain.
package snapshot
