// Package buildconfig handles parsing and writing of the declarative build
// configuration (build.config.toml) that lists the providers and drivers a
// workspace should carry. The same document shape is used for the snapshot of
// the last applied configuration.
package buildconfig
