package domain

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mocks . ConfigProvider,AssetResolver

// Configuration keys read through a ConfigProvider
const (
	// ConfigKeyJSONPath is the filesystem path of the webpack manifest
	ConfigKeyJSONPath = "json_path"
	// ConfigKeySiteURL is the base URL prepended to relative asset paths
	ConfigKeySiteURL = "site_url"
)

// ConfigProvider is a read-only key/value configuration lookup.
// *viper.Viper satisfies it.
type ConfigProvider interface {
	// GetString returns the value for key, or "" when unset
	GetString(key string) string
}

// AssetResolver answers asset queries against a webpack manifest
type AssetResolver interface {
	// JSFiles returns the JS files of the named chunks, or of every chunk
	// when no name is given
	JSFiles(chunkNames ...string) ([]string, error)
	// CSSFiles returns the CSS files of the named chunks, or of every chunk
	// when no name is given
	CSSFiles(chunkNames ...string) ([]string, error)
	// IsPublicPathAbsoluteURL reports whether files.publicPath starts with "http"
	IsPublicPathAbsoluteURL() (bool, error)
}
