// Package workspace integrates build config, manifest, and snapshot loading
// with path resolution. It provides the Context type that holds resolved
// workspace paths and loaded documents, writes the patched manifests back as
// one staged commit, and drives a full reconciliation run.
package workspace
