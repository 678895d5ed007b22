package export

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fableworks/storybook/internal/logging"
	"github.com/fableworks/storybook/pkg/domain"
	"github.com/fableworks/storybook/pkg/ports"
)

// Result records the outcome of the most recent export run.
type Result struct {
	JobID    string
	Status   domain.ExportStatus
	Pages    int
	Duration time.Duration
	Err      error
}

// Pipeline turns a sequence of composed pages into a PDF document. Only
// one export may run at a time; concurrent calls fail fast with
// domain.ErrExportInProgress instead of queueing.
type Pipeline struct {
	rasterizer ports.Rasterizer
	hooks      domain.LifecycleHooks
	logger     *slog.Logger

	mu     sync.Mutex
	status domain.ExportStatus
	last   Result
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithRasterizer replaces the default page rasterizer.
func WithRasterizer(r ports.Rasterizer) PipelineOption {
	return func(p *Pipeline) {
		if r != nil {
			p.rasterizer = r
		}
	}
}

// WithHooks registers lifecycle callbacks fired during an export run.
func WithHooks(h domain.LifecycleHooks) PipelineOption {
	return func(p *Pipeline) {
		p.hooks = h
	}
}

// WithLogger sets the structured logger for the pipeline.
func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPipeline builds an export pipeline. Without options it uses the
// built-in rasterizer and a no-op logger.
func NewPipeline(opts ...PipelineOption) (*Pipeline, error) {
	p := &Pipeline{
		status: domain.ExportIdle,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rasterizer == nil {
		r, err := NewRaster()
		if err != nil {
			return nil, fmt.Errorf("failed to create rasterizer: %w", err)
		}
		p.rasterizer = r
	}
	return p, nil
}

// Status reports the current state of the pipeline.
func (p *Pipeline) Status() domain.ExportStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Last returns the result of the most recent export run, finished or not.
func (p *Pipeline) Last() Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// Export rasterizes every page and writes the assembled PDF to w. The
// document is built entirely in memory and only reaches w when all pages
// succeeded; on any failure w is left untouched. The context is checked
// between pages so cancellation takes effect promptly.
func (p *Pipeline) Export(ctx context.Context, pages []domain.PageView, photo image.Image, w io.Writer) error {
	jobID, err := p.begin()
	if err != nil {
		return err
	}

	start := time.Now()
	runErr := p.run(ctx, jobID, pages, photo, w)
	elapsed := time.Since(start)

	p.finish(jobID, len(pages), elapsed, runErr)

	if p.hooks.OnExportDone != nil {
		p.hooks.OnExportDone(ctx, &domain.ExportEvent{
			Timestamp: time.Now(),
			JobID:     jobID,
			Pages:     len(pages),
			Duration:  elapsed,
			Err:       runErr,
		})
	}
	return runErr
}

func (p *Pipeline) begin() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status == domain.ExportExporting {
		return "", domain.ErrExportInProgress
	}

	jobID := uuid.NewString()
	p.status = domain.ExportExporting
	p.last = Result{JobID: jobID, Status: domain.ExportExporting}
	return jobID, nil
}

func (p *Pipeline) finish(jobID string, pages int, elapsed time.Duration, err error) {
	status := domain.ExportSucceeded
	if err != nil {
		status = domain.ExportFailed
	}

	p.mu.Lock()
	p.last = Result{JobID: jobID, Status: status, Pages: pages, Duration: elapsed, Err: err}
	p.status = domain.ExportIdle
	p.mu.Unlock()

	if err != nil {
		p.logger.Error("export failed", "job_id", jobID, "pages", pages, "error", err)
		return
	}
	p.logger.Info("export finished", "job_id", jobID, "pages", pages, "duration", elapsed)
}

func (p *Pipeline) run(ctx context.Context, jobID string, pages []domain.PageView, photo image.Image, w io.Writer) error {
	if len(pages) == 0 {
		return domain.ErrNoPages
	}

	doc := newAssembler()
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("export canceled at page %d: %w", page.Index, err)
		}

		pageStart := time.Now()
		var pagePhoto image.Image
		if page.HasPhoto() {
			pagePhoto = photo
		}
		img, err := p.rasterizer.Rasterize(ctx, page, pagePhoto)
		if err != nil {
			return fmt.Errorf("failed to rasterize page %d: %w", page.Index, err)
		}
		if err := doc.appendPage(page.Index, img); err != nil {
			return err
		}

		if p.hooks.OnPageRasterized != nil {
			p.hooks.OnPageRasterized(ctx, &domain.PageEvent{
				Timestamp: time.Now(),
				JobID:     jobID,
				PageIndex: page.Index,
				Duration:  time.Since(pageStart),
			})
		}
		p.logger.Debug("page rasterized", "job_id", jobID, "page", page.Index)
	}

	return doc.Flush(w)
}
