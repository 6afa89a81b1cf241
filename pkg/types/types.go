package types

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
)

// FileProcessStatus is the durable status of an ingestion record.
type FileProcessStatus string

const (
	// FileProcessStatusProcessing is the initial status, held while the
	// pipeline runs.
	FileProcessStatusProcessing FileProcessStatus = "PROCESSING"
	// FileProcessStatusSuccess means the file is fully searchable.
	FileProcessStatusSuccess FileProcessStatus = "SUCCESS"
	// FileProcessStatusFailed means some pipeline step failed.
	FileProcessStatusFailed FileProcessStatus = "FAILED"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s FileProcessStatus) IsTerminal() bool {
	return s == FileProcessStatusSuccess || s == FileProcessStatusFailed
}

// IsValid reports whether s is a known status.
func (s FileProcessStatus) IsValid() bool {
	return s == FileProcessStatusProcessing || s.IsTerminal()
}

type (
	// FileUIDType is the ingestion record unique identifier.
	FileUIDType = uuid.UUID
	// OwnerUIDType identifies the uploading user. It's an opaque string
	// issued by the upstream auth provider.
	OwnerUIDType = string
	// VectorItemIDType identifies an item in the vector index.
	VectorItemIDType = uuid.UUID
)

// UploadEvent signals that a file has finished uploading to storage.
type UploadEvent struct {
	FileKey  string       `json:"fileKey"`
	FileName string       `json:"fileName"`
	OwnerUID OwnerUIDType `json:"ownerId"`
}

// Validate checks that every field of the event is populated.
func (e UploadEvent) Validate() error {
	var missing []string
	if strings.TrimSpace(e.FileKey) == "" {
		missing = append(missing, "fileKey")
	}
	if strings.TrimSpace(e.FileName) == "" {
		missing = append(missing, "fileName")
	}
	if strings.TrimSpace(e.OwnerUID) == "" {
		missing = append(missing, "ownerId")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
