package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrDuplicatePending   = errors.New("postcode already has a pending submission")
)

// ValidationError reports which submitted fields were missing or invalid.
// No store or photo call has been made when this is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid submission: %s", strings.Join(e.Fields, ", "))
}

// UploadError means the photo never reached storage; no record was created.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("photo upload failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// PersistError means the record insert failed after the photo upload
// succeeded. The uploaded photo is left in place.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("submission persist failed: %v", e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// FetchError means the full re-read behind an aggregate refresh failed.
// Callers keep showing their previous summary rather than blanking out.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("submission fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
