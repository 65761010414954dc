package driving

import "context"

// IngestReport summarises a directory ingestion run.
type IngestReport struct {
	// Ingested counts documents created, including degraded ones.
	Ingested int

	// Skipped counts files whose extension is not a supported type.
	Skipped int

	// Failed lists paths that could not be ingested, with the reason.
	Failed []IngestFailure
}

// IngestFailure records a single file that could not be ingested.
type IngestFailure struct {
	Path   string
	Reason string
}

// IngestService ingests files from the local filesystem in bulk.
type IngestService interface {
	// IngestDirectory walks dir recursively and uploads every supported
	// file. Per-file failures are recorded in the report, not returned
	// as errors; the walk itself failing is an error.
	IngestDirectory(ctx context.Context, dir string) (*IngestReport, error)

	// IngestFile uploads a single file from disk.
	IngestFile(ctx context.Context, path string) error
}
