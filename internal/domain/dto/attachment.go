package dto

// UploadResponse is the JSON body returned by the upload endpoint.
type UploadResponse struct {
	FileID          string `json:"fileId"`
	URL             string `json:"url"`
	DeletedPrevious bool   `json:"deletedPrevious"`
}

// PhotoListResponse is the JSON body for a pet's photo reference list.
type PhotoListResponse struct {
	Photos []string `json:"photos"`
}

// PhotoReplaceRequest is the JSON body accepted by the photo list
// replacement endpoint.
type PhotoReplaceRequest struct {
	Photos []string `json:"photos"`
}

// PhotoReplaceResponse reports the stored list and the cleanup outcome.
type PhotoReplaceResponse struct {
	Photos         []string `json:"photos"`
	Orphans        []string `json:"orphans"`
	OrphansDeleted int      `json:"orphansDeleted"`
}
