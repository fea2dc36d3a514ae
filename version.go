package petchart

import "fmt"

const (
	major = 0
	minor = 1
	patch = 0
)

// StringVersion returns the semantic version of the attachment service.
func StringVersion() string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
