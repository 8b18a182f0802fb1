// Package evidence implements the compliance evidence domain for Tutela.
// It provides types, data access, and business logic for uploading supporting
// files against an AI system, with blob storage integration and PDF metadata
// extraction.
package evidence

import (
	"time"

	"github.com/google/uuid"
)

// Evidence represents an uploaded supporting file with its metadata and blob
// storage reference.
type Evidence struct {
	ID          uuid.UUID `json:"id"`
	SystemID    uuid.UUID `json:"system_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   *int      `json:"page_count"`
	StorageKey  string    `json:"storage_key"`
	Description string    `json:"description"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// CreateCommand carries the data needed to upload and register evidence.
// Data holds the raw file bytes. PageCount is optional and may be extracted
// by the caller via pdfcpu; nil values are stored as NULL.
type CreateCommand struct {
	Data        []byte
	SystemID    uuid.UUID
	Filename    string
	ContentType string
	Description string
	PageCount   *int
}
