package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrTemplateNotFound is returned when a template ID is not in the catalog.
var ErrTemplateNotFound = errors.New("story template not found")

// ErrExportInProgress is returned when an export is triggered while a
// previous export on the same pipeline has not finished.
var ErrExportInProgress = errors.New("export already in progress")

// ErrNoPages is returned when an export is triggered with zero rendered pages.
var ErrNoPages = errors.New("export requires at least one rendered page")
