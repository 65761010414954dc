package services

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driving"
	"github.com/cerebra-labs/cerebra-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService ingests files from the local filesystem in bulk.
// Directory walks upload files through a bounded worker pool; per-file
// failures are reported, never fatal to the run.
type IngestService struct {
	library  driving.LibraryService
	poolSize int
}

// NewIngestService creates a new ingest service. A poolSize <= 0 sizes
// the worker pool to half the available CPUs, at least one.
func NewIngestService(library driving.LibraryService, poolSize int) *IngestService {
	if poolSize <= 0 {
		poolSize = runtime.NumCPU() / 2
		if poolSize < 1 {
			poolSize = 1
		}
	}
	return &IngestService{
		library:  library,
		poolSize: poolSize,
	}
}

// IngestDirectory walks dir recursively and uploads every supported file.
func (s *IngestService) IngestDirectory(ctx context.Context, dir string) (*driving.IngestReport, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, dir)
	}

	pool, err := ants.NewPool(s.poolSize)
	if err != nil {
		return nil, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		report driving.IngestReport
	)

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if _, err := domain.FileTypeForPath(path); err != nil {
			logger.Debug("skipping %s: unsupported extension", path)
			mu.Lock()
			report.Skipped++
			mu.Unlock()
			return nil
		}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := s.IngestFile(ctx, path); err != nil {
				logger.Warn("ingesting %s: %v", path, err)
				mu.Lock()
				report.Failed = append(report.Failed, driving.IngestFailure{
					Path:   path,
					Reason: err.Error(),
				})
				mu.Unlock()
				return
			}
			mu.Lock()
			report.Ingested++
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			return fmt.Errorf("submitting %s: %w", path, submitErr)
		}
		return nil
	})

	wg.Wait()

	if walkErr != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, walkErr)
	}

	logger.Info("ingested %d file(s) from %s (%d skipped, %d failed)",
		report.Ingested, dir, report.Skipped, len(report.Failed))
	return &report, nil
}

// IngestFile uploads a single file from disk.
func (s *IngestService) IngestFile(ctx context.Context, path string) error {
	fileType, err := domain.FileTypeForPath(path)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	_, err = s.library.UploadFile(ctx, driving.UploadInput{
		Name:     filepath.Base(path),
		FileType: fileType,
		Content:  content,
	})
	return err
}
