package entity

import "time"

// BlobPutResult describes a blob freshly written to the object store.
type BlobPutResult struct {
	ID       string `json:"id"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

// ObjectInfo is the stream-level metadata kept by the object store.
type ObjectInfo struct {
	ID          string            `json:"id"`
	Size        int64             `json:"size"`
	ContentType string            `json:"content_type"`
	Filename    string            `json:"filename"`
	UploadTime  time.Time         `json:"upload_time"`
	Metadata    map[string]string `json:"metadata"`
}

// SwapResult is the outcome of an upload-and-swap operation.
type SwapResult struct {
	FileID          string
	URL             string
	DeletedPrevious bool
}

// ReplaceResult reports a full photo reference list replacement on a record.
type ReplaceResult struct {
	Photos         []string
	Orphans        []string
	OrphansDeleted int
}
