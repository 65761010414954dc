// Package extractors provides implementations of the Extractor interface
// for the supported input formats. Each extractor knows how to turn the
// raw bytes of one declared file type into normalised text.
//
// Extractors are registered with the ExtractorRegistry at startup.
// Formats backed by optional external tools (PDF, OCR) degrade to an
// empty result with a diagnostic instead of failing.
package extractors
