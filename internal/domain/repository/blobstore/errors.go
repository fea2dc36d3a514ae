package blobstore

import "errors"

var (
	// ErrBlobNotFound is returned by Open and Stat when no blob exists
	// under the requested id.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrTypeMismatch is returned by Put when the sniffed content does not
	// match the declared media type.
	ErrTypeMismatch = errors.New("content does not match declared media type")
)
