package presentation

const (
	IDParam    = "id"
	AuthKey    = "Authorization"
	ReasonTag  = "X-Reason"
	OwnerKey   = "owner"
	SessionKey = "petchart_session"

	FileField       = "file"
	FilenameField   = "filename"
	PreviousIDField = "previousId"

	// Stored blobs are immutable and ids are never reused, so downloads
	// can be cached forever.
	ImmutableCacheControl = "public, max-age=31536000, immutable"
)
