package utils

import "strings"

// mimeTypeToExtension maps the MIME types this service serves to their
// typical file extensions. Uploads are restricted to image/*, but stored
// objects from older deployments may carry other types.
var mimeTypeToExtension = map[string]string{
	"image/avif":               ".avif",
	"image/bmp":                ".bmp",
	"image/gif":                ".gif",
	"image/heic":               ".heic",
	"image/jpeg":               ".jpg",
	"image/png":                ".png",
	"image/svg+xml":            ".svg",
	"image/tiff":               ".tif",
	"image/webp":               ".webp",
	"application/octet-stream": ".bin",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME
// type. If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "image/svg+xml; charset=utf-8")
	cleanedMimeType := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	if ext, ok := mimeTypeToExtension[cleanedMimeType]; ok {
		return ext
	}

	return ".bin"
}
