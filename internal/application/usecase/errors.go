package usecase

import "errors"

var (
	// ErrNoContent means the upload carried no file bytes.
	ErrNoContent = errors.New("no file provided")

	// ErrInvalidType means the declared media type is outside the allowed
	// set (image/* by default).
	ErrInvalidType = errors.New("only image uploads are allowed")

	// ErrTooLarge means the payload exceeds the configured size ceiling.
	ErrTooLarge = errors.New("file exceeds the upload size limit")

	// ErrInvalidID means the identifier is not well-formed for the store's
	// id scheme.
	ErrInvalidID = errors.New("malformed blob identifier")
)
