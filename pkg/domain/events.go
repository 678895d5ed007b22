package domain

import (
	"context"
	"time"
)

// ExportStatus is the state of the export pipeline's finite state machine.
type ExportStatus string

const (
	ExportIdle      ExportStatus = "idle"
	ExportExporting ExportStatus = "exporting"
	ExportSucceeded ExportStatus = "succeeded"
	ExportFailed    ExportStatus = "failed"
)

// PageEvent describes the rasterization of a single page during export.
type PageEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	JobID     string        `json:"job_id"`
	PageIndex int           `json:"page_index"`
	Duration  time.Duration `json:"duration"`
}

// ExportEvent describes the completion of an export job, successful or not.
type ExportEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	JobID     string        `json:"job_id"`
	Pages     int           `json:"pages"`
	Duration  time.Duration `json:"duration"`
	Err       error         `json:"-"`
}

// LifecycleHooks defines callbacks for observability. All hooks are optional;
// nil hooks are skipped. Hooks run synchronously on the exporting goroutine
// and must be cheap.
type LifecycleHooks struct {
	OnPageRasterized func(context.Context, *PageEvent)
	OnExportDone     func(context.Context, *ExportEvent)
	OnSessionSaved   func(context.Context, string)
}
