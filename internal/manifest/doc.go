// Package manifest reads the JSON manifest produced by a webpack build and
// derives the chunk table from it.
//
// # Manifest Format
//
// The manifest is the JSON document written by the build step:
//
//	{
//	  "files": {
//	    "publicPath": "/assets/",
//	    "chunks": {
//	      "main":   {"entry": "main.3f2a.js", "css": ["main.91bc.css"]},
//	      "vendor": {"entry": "vendor.77de.js", "css": []}
//	    }
//	  }
//	}
//
// Chunks keep the order in which they appear in the document.
//
// # Usage
//
//	doc, err := manifest.Load("build/webpack-assets.json")
//	if err != nil {
//	    return err
//	}
//
//	table, err := manifest.BuildChunkTable(doc)
//	if err != nil {
//	    return err
//	}
//
//	for _, name := range table.Names() {
//	    chunk, _ := table.Get(name)
//	    fmt.Println(name, chunk.JS, chunk.CSS)
//	}
//
// Manifests compressed with zstd (a ".zst" suffix or the zstd magic bytes)
// are decompressed transparently.
//
// # Error Handling
//
// The package defines sentinel errors for the failure cases:
//   - ErrManifestNotFound: manifest file does not exist or is a directory
//   - ErrManifestParse: file content is not valid JSON
//   - ErrMalformedManifest: document lacks the files.chunks object
package manifest
