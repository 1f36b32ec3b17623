// Package config provides the configuration system for highlighting.
//
// Options is the mutable, serializable form; Snapshot is the compiled,
// immutable form the highlight engine consumes. The split means a
// running scan always sees one consistent configuration: changes build
// a new snapshot, they never mutate an existing one.
//
// Configuration sources layer with higher sources overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← Highest priority
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/prism/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: file loading (TOML, environment variables, editor settings import)
//   - watcher: file watching for live reload
//   - notify: change notification and observer pattern
//
// # Basic Usage
//
// Compile the defaults and check a document:
//
//	snap := config.MustSnapshot(config.Default())
//	if snap.ShouldHighlight("text/x-go") {
//	    // build a highlighter with snap
//	}
package config
