// Package taggers provides the tagging strategies behind the Tagger
// interface and the factory that selects one at startup.
//
// Two strategies exist: a keyword strategy (token frequency plus a fixed
// category-pattern table) and an embedding strategy (nearest-label
// classification over a local embedding service). Both honour the same
// contract; the active strategy is a configuration choice resolved once
// at startup, and an unreachable embedding backend falls back to the
// keyword strategy automatically.
package taggers
