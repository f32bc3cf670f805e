// Package reconcile computes and applies the changes that bring the workspace
// manifests in line with a build configuration.
//
// Compute is pure: it reads the loaded manifests, the desired configuration,
// and the previously applied snapshot, and returns a Plan. Apply patches the
// in-memory manifests from a Plan. Neither touches the filesystem.
package reconcile
