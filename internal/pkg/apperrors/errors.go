package apperrors

import "errors"

// Common errors
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrNoFileAttached is returned when a create operation requires an
	// image but the request carried no file.
	ErrNoFileAttached = errors.New("no image uploaded")

	// ErrUploadFailed is returned when the remote media host rejects or
	// fails an upload, or returns no usable URL.
	ErrUploadFailed = errors.New("media upload failed")
)
