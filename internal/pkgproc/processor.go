// Package pkgproc runs the document pipeline for one loan package: register
// the template set, load the declared files, submit each to the extraction
// service, and fold the results into a package summary.
package pkgproc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/loanpack/internal/manifest"
	"github.com/sells-group/loanpack/internal/model"
	"github.com/sells-group/loanpack/pkg/xtract"
)

// ErrUnknownPackage is returned when a package id has no manifest. A caller
// error, not an extraction failure.
var ErrUnknownPackage = errors.New("pkgproc: unknown package id")

const defaultConcurrency = 5

// Processor drives package processing. Construct with New.
type Processor struct {
	client      xtract.Client
	store       *manifest.Store
	docsRoot    string
	concurrency int
	now         func() time.Time
}

// Option configures a Processor.
type Option func(*Processor)

// WithConcurrency caps simultaneous extraction submissions. Default 5.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithClock overrides the timestamp source (for testing).
func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		p.now = now
	}
}

// New creates a Processor reading document files from docsRoot, laid out as
// one subdirectory per package manifest Directory.
func New(client xtract.Client, store *manifest.Store, docsRoot string, opts ...Option) *Processor {
	p := &Processor{
		client:      client,
		store:       store,
		docsRoot:    docsRoot,
		concurrency: defaultConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs the full pipeline for one package. Template registration
// failure aborts the package; per-document load and extraction failures
// produce failed DocumentResults without affecting the other documents.
// Output order follows the manifest's declared document order.
func (p *Processor) Process(ctx context.Context, packageID string) (*model.PackageResult, error) {
	pkg, ok := p.store.PackageByID(packageID)
	if !ok {
		return nil, eris.Wrapf(ErrUnknownPackage, "pkgproc: %q", packageID)
	}

	log := zap.L().With(
		zap.String("package_id", packageID),
		zap.String("run_id", uuid.NewString()),
	)
	log.Info("processing package", zap.Int("documents", len(pkg.Documents)))

	componentID, err := p.registerTemplates(ctx)
	if err != nil {
		return nil, eris.Wrapf(err, "pkgproc: register templates for %s", packageID)
	}

	loads := p.loadFiles(ctx, pkg)
	results := p.extractAll(ctx, pkg, loads, componentID)

	summary := p.summarize(packageID, results)
	log.Info("package processed",
		zap.Int("successful", summary.SuccessfulDocuments),
		zap.Int("failed", summary.FailedDocuments),
		zap.Int("total_fields", summary.TotalFields),
	)

	return &model.PackageResult{Summary: summary, Documents: results}, nil
}

// registerTemplates registers the store's template set once per package run
// and returns the component id grouping them.
func (p *Processor) registerTemplates(ctx context.Context) (string, error) {
	resp, err := p.client.RegisterComponent(ctx, xtract.RegisterComponentRequest{
		EnableClassifier: true,
		EnableExtraction: true,
		Templates:        p.store.Templates,
	})
	if err != nil {
		return "", err
	}
	return resp.ComponentID, nil
}

type loadedFile struct {
	data []byte
	err  error
}

// loadFiles reads every declared file concurrently. Results are positional:
// loads[i] corresponds to pkg.Documents[i]. A failed read is recorded, not
// fatal.
func (p *Processor) loadFiles(ctx context.Context, pkg *model.PackageManifest) []loadedFile {
	loads := make([]loadedFile, len(pkg.Documents))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, doc := range pkg.Documents {
		i, doc := i, doc
		g.Go(func() error {
			path := filepath.Join(p.docsRoot, pkg.Directory, doc.FileName)
			data, err := os.ReadFile(path)
			if err != nil {
				zap.L().Warn("document load failed",
					zap.String("file", doc.FileName),
					zap.Error(err))
				loads[i] = loadedFile{err: eris.Wrapf(err, "load %s", doc.FileName)}
				return nil
			}
			loads[i] = loadedFile{data: data}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // workers never return errors

	return loads
}

// extractAll submits every successfully loaded file concurrently. Results are
// positional so concurrency cannot reorder output.
func (p *Processor) extractAll(ctx context.Context, pkg *model.PackageManifest, loads []loadedFile, componentID string) []model.DocumentResult {
	results := make([]model.DocumentResult, len(pkg.Documents))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, doc := range pkg.Documents {
		i, doc := i, doc
		g.Go(func() error {
			results[i] = p.extractOne(ctx, doc, loads[i], componentID)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // workers never return errors

	return results
}

func (p *Processor) extractOne(ctx context.Context, doc model.ManifestDocument, load loadedFile, componentID string) model.DocumentResult {
	result := model.DocumentResult{
		ID:           doc.FileName,
		FileName:     doc.FileName,
		DocumentType: doc.DocumentType,
		Category:     doc.Category,
		Timestamp:    p.now(),
	}

	if load.err != nil {
		result.Status = model.DocumentFailed
		result.Error = load.err.Error()
		return result
	}

	resp, err := p.client.Process(ctx, load.data, doc.FileName, componentID)
	if err != nil {
		zap.L().Warn("extraction failed",
			zap.String("file", doc.FileName),
			zap.Bool("timeout", xtract.IsTimeout(err)),
			zap.Error(err))
		result.Status = model.DocumentFailed
		result.Error = err.Error()
		return result
	}

	result.Status = model.DocumentCompleted
	result.DetectedTemplate = resp.DetectedTemplate
	result.Fields = resp.Fields
	if result.Fields == nil {
		result.Fields = []model.ExtractedField{}
	}
	return result
}

// summarize folds completed documents' fields into the package summary.
func (p *Processor) summarize(packageID string, results []model.DocumentResult) model.PackageSummary {
	s := model.PackageSummary{
		PackageID:      packageID,
		TotalDocuments: len(results),
		Timestamp:      p.now(),
	}
	for _, r := range results {
		if r.Status != model.DocumentCompleted {
			s.FailedDocuments++
			continue
		}
		s.SuccessfulDocuments++
		for _, f := range r.Fields {
			s.TotalFields++
			switch f.ValidationState {
			case model.ValidationValid:
				s.ValidFields++
			case model.ValidationVerificationNeeded:
				s.VerificationNeededFields++
			default:
				s.MissingFields++
			}
		}
	}
	if s.SuccessfulDocuments == s.TotalDocuments {
		s.OverallStatus = model.PackageCompleted
	} else {
		s.OverallStatus = model.PackagePartial
	}
	return s
}

// ProcessDocument runs classification and extraction for a single uploaded
// file outside any package manifest, using the store's registered templates.
func (p *Processor) ProcessDocument(ctx context.Context, file []byte, fileName string) (*model.DocumentResult, error) {
	componentID, err := p.registerTemplates(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "pkgproc: register templates")
	}

	result := p.extractOne(ctx, model.ManifestDocument{FileName: fileName}, loadedFile{data: file}, componentID)
	return &result, nil
}
