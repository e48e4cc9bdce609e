package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrManifestNotFound indicates the manifest file does not exist or is a directory
	ErrManifestNotFound = errors.New("unable to find generated assets JSON file")

	// ErrManifestParse indicates the manifest file is not valid JSON
	ErrManifestParse = errors.New("manifest must be valid JSON")

	// ErrMalformedManifest indicates the document lacks the expected files.chunks structure
	ErrMalformedManifest = errors.New("unexpected webpack output content")
)
