package domain

// AssetKind identifies which files of a chunk are requested
type AssetKind string

const (
	// AssetJS selects the chunk entry script
	AssetJS AssetKind = "js"
	// AssetCSS selects the chunk stylesheets
	AssetCSS AssetKind = "css"
)

// AssetList is the result of an asset query, as printed by the CLI in JSON mode
type AssetList struct {
	Kind   AssetKind `json:"kind"`
	Chunks []string  `json:"chunks,omitempty"`
	Files  []string  `json:"files"`
}
