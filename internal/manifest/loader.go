package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the frame header of zstd-compressed data
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Load reads and parses a manifest file from the given path
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
	}
	if err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrManifestNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	if isZstd(path, data) {
		data, err = decompressZstd(data)
		if err != nil {
			return nil, err
		}
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses a manifest from raw JSON bytes.
// Valid JSON that is not an object yields an empty document.
func LoadFromBytes(data []byte) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &Document{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	doc := &Document{}
	if raw, ok := top["files"]; ok {
		var files map[string]json.RawMessage
		if err := json.Unmarshal(raw, &files); err == nil {
			doc.files = files
		}
	}

	return doc, nil
}

// BuildChunkTable extracts the chunks from files.chunks.
// A chunk without an entry contributes no JS file and a chunk without css
// contributes no CSS files.
func BuildChunkTable(doc *Document) (*ChunkTable, error) {
	raw, ok := doc.Field("chunks")
	if !ok {
		return nil, fmt.Errorf("%w: missing files.chunks", ErrMalformedManifest)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedManifest, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: files.chunks must be an object", ErrMalformedManifest)
	}

	table := NewChunkTable()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedManifest, err)
		}
		name, _ := tok.(string)

		chunk, err := decodeChunk(dec)
		if err != nil {
			return nil, fmt.Errorf("%w: chunk %q: %v", ErrMalformedManifest, name, err)
		}
		table.set(name, chunk)
	}

	return table, nil
}

// decodeChunk reads one chunk object. Only the exact keys "entry" and "css"
// are read; struct decoding would also accept "Entry" or "CSS".
func decodeChunk(dec *json.Decoder) (Chunk, error) {
	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return Chunk{}, err
	}

	var chunk Chunk
	if raw, ok := fields["entry"]; ok {
		var entry *string
		if err := json.Unmarshal(raw, &entry); err != nil {
			return Chunk{}, fmt.Errorf("entry: %w", err)
		}
		if entry != nil {
			chunk.JS = []string{*entry}
		}
	}
	if raw, ok := fields["css"]; ok {
		if err := json.Unmarshal(raw, &chunk.CSS); err != nil {
			return Chunk{}, fmt.Errorf("css: %w", err)
		}
	}
	return chunk, nil
}

func isZstd(path string, data []byte) bool {
	return strings.HasSuffix(path, ".zst") || bytes.HasPrefix(data, zstdMagic)
}

func decompressZstd(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer decoder.Close()

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decompress zstd: %v", ErrManifestParse, err)
	}
	return out, nil
}
