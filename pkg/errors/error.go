// Package errors contains domain errors that the different layers use to add
// meaning to an error. The HTTP handlers translate them into status codes and
// the ingestion pipeline uses them to classify failures. It is a separate
// package in order to avoid import cycles.
package errors

import (
	"fmt"

	errorsx "github.com/instill-ai/x/errors"
)

// Pipeline failures. Each one identifies the step that failed.
var (
	// ErrFetch is used when the document bytes can't be retrieved from their
	// location.
	ErrFetch = fmt.Errorf("fetch failed")
	// ErrParse is used when the bytes aren't a readable PDF or contain no
	// text.
	ErrParse = fmt.Errorf("parse failed")
	// ErrEmbedding is used when the embedding provider fails or returns a
	// malformed response.
	ErrEmbedding = fmt.Errorf("embedding failed")
	// ErrIndexWrite is used when the vector index rejects an upsert.
	ErrIndexWrite = fmt.Errorf("vector index write failed")
	// ErrRecordStore is used when the ingestion record store can't be read or
	// written.
	ErrRecordStore = fmt.Errorf("record store failure")
)

// Request and record errors.
var (
	// ErrInvalidArgument is used when the provided argument is incorrect.
	ErrInvalidArgument = fmt.Errorf("invalid")
	// ErrNotFound is used when a resource doesn't exist.
	ErrNotFound = fmt.Errorf("not found")
	// ErrUnauthorized is used when an upload event can't be authenticated.
	ErrUnauthorized = errorsx.AddMessage(fmt.Errorf("unauthorized"), "The upload event signature is invalid.")
	// ErrStatusConflict is used when a terminal ingestion record is asked to
	// move to a different status.
	ErrStatusConflict = fmt.Errorf("status conflict")
	// ErrUnavailable is used when an executor can't accept a run right now.
	ErrUnavailable = fmt.Errorf("unavailable")
)
