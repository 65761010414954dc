// Package domain defines the core business entities for Cerebra.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A stored unit of text with derived tags and summary
//   - FileType: The declared format of an ingested document
//   - SearchMode: One of the three matching semantics
//   - Stats: Read-side aggregation over the document collection
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
