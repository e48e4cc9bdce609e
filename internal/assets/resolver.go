// Package assets resolves the JavaScript and CSS files of webpack chunks
// into URLs that can be emitted by templates.
//
// A Resolver reads the manifest path and the site URL from a
// domain.ConfigProvider:
//
//	resolver := assets.NewResolver(viper.GetViper())
//	scripts, err := resolver.JSFiles("main")
//	// ["https://example.com/build/main.3f2a.js"]
//
// The chunk table is built on the first JSFiles or CSSFiles call and kept
// for the lifetime of the Resolver; a rebuilt manifest needs a new Resolver.
// A Resolver is meant for one request or render at a time.
package assets

import (
	"slices"
	"strings"

	"github.com/quantmind-br/webpackassets/internal/domain"
	"github.com/quantmind-br/webpackassets/internal/manifest"
	"github.com/quantmind-br/webpackassets/internal/utils"
)

// absolutePrefix marks a path as absolute. The check is a plain prefix
// match, so "httpfoo" counts as absolute too.
const absolutePrefix = "http"

// Ensure Resolver implements domain.AssetResolver
var _ domain.AssetResolver = (*Resolver)(nil)

// Resolver answers chunk asset queries against a webpack manifest
type Resolver struct {
	config domain.ConfigProvider
	logger *utils.Logger
	chunks *manifest.ChunkTable
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLogger sets the logger used for manifest reads
func WithLogger(logger *utils.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger.WithComponent("assets")
		}
	}
}

// NewResolver creates a Resolver reading domain.ConfigKeyJSONPath and
// domain.ConfigKeySiteURL from cfg
func NewResolver(cfg domain.ConfigProvider, opts ...Option) *Resolver {
	r := &Resolver{
		config: cfg,
		logger: utils.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ManifestPath returns the configured manifest path with ~ expanded
func (r *Resolver) ManifestPath() string {
	return utils.ExpandPath(r.config.GetString(domain.ConfigKeyJSONPath))
}

func (r *Resolver) loadManifest() (*manifest.Document, error) {
	path := r.ManifestPath()
	log := r.logger.WithManifest(path)
	log.Debug().Msg("Reading webpack manifest")

	doc, err := manifest.Load(path)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to read webpack manifest")
		return nil, err
	}
	return doc, nil
}

// ChunkTable returns the chunk table, reading the manifest on the first
// successful call only. The table is read-only.
func (r *Resolver) ChunkTable() (*manifest.ChunkTable, error) {
	if r.chunks != nil {
		return r.chunks, nil
	}

	doc, err := r.loadManifest()
	if err != nil {
		return nil, err
	}

	table, err := manifest.BuildChunkTable(doc)
	if err != nil {
		return nil, err
	}

	table.Each(func(name string, chunk manifest.Chunk) {
		if len(chunk.JS) == 0 {
			r.logger.Warn().Str("chunk", name).Msg("Chunk has no entry")
		}
	})
	r.logger.Debug().Int("chunks", table.Len()).Msg("Built chunk table")

	r.chunks = table
	return table, nil
}

// JSFiles returns the entry script of each named chunk, or of every chunk
// when called without arguments. An empty non-nil list selects nothing.
// Chunks are visited in manifest order and unknown names are ignored.
// Relative paths are prefixed with the site URL.
func (r *Resolver) JSFiles(chunkNames ...string) ([]string, error) {
	return r.Files(domain.AssetJS, chunkNames...)
}

// CSSFiles returns the stylesheets of each named chunk, with the same
// selection, ordering and prefixing as JSFiles.
func (r *Resolver) CSSFiles(chunkNames ...string) ([]string, error) {
	return r.Files(domain.AssetCSS, chunkNames...)
}

// Files returns the files of the given kind for the named chunks. A nil
// chunkNames selects every chunk.
func (r *Resolver) Files(kind domain.AssetKind, chunkNames ...string) ([]string, error) {
	table, err := r.ChunkTable()
	if err != nil {
		return nil, err
	}

	paths := []string{}
	table.Each(func(name string, chunk manifest.Chunk) {
		if chunkNames != nil && !slices.Contains(chunkNames, name) {
			return
		}
		if kind == domain.AssetCSS {
			paths = append(paths, chunk.CSS...)
		} else {
			paths = append(paths, chunk.JS...)
		}
	})

	return r.absolutizeAll(paths), nil
}

// IsPublicPathAbsoluteURL reads the manifest again and reports whether
// files.publicPath starts with "http". A missing publicPath is not an error.
func (r *Resolver) IsPublicPathAbsoluteURL() (bool, error) {
	doc, err := r.loadManifest()
	if err != nil {
		return false, err
	}

	publicPath, ok := doc.PublicPath()
	if !ok {
		return false, nil
	}
	return strings.HasPrefix(publicPath, absolutePrefix), nil
}

// Absolutize prefixes a relative path with the site URL; absolute paths are
// returned unchanged
func (r *Resolver) Absolutize(path string) string {
	if IsRelativePath(path) {
		return r.config.GetString(domain.ConfigKeySiteURL) + path
	}
	return path
}

func (r *Resolver) absolutizeAll(paths []string) []string {
	for i, path := range paths {
		paths[i] = r.Absolutize(path)
	}
	return paths
}

// IsRelativePath reports whether path does not start with "http"
func IsRelativePath(path string) bool {
	return !strings.HasPrefix(path, absolutePrefix)
}
