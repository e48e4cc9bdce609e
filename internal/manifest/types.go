package manifest

import (
	"encoding/json"
	"slices"
)

// Document is a parsed manifest. Only the members of the top-level "files"
// object are kept, undecoded, so that each consumer decodes just what it reads.
type Document struct {
	files map[string]json.RawMessage
}

// HasFiles reports whether the document has a "files" object
func (d *Document) HasFiles() bool {
	return d != nil && d.files != nil
}

// Field returns the raw value of files.<name>
func (d *Document) Field(name string) (json.RawMessage, bool) {
	if !d.HasFiles() {
		return nil, false
	}
	raw, ok := d.files[name]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

// PublicPath returns files.publicPath. The second result is false when the
// field is absent, null, or not a string.
func (d *Document) PublicPath() (string, bool) {
	raw, ok := d.Field("publicPath")
	if !ok {
		return "", false
	}
	var publicPath string
	if err := json.Unmarshal(raw, &publicPath); err != nil {
		return "", false
	}
	return publicPath, true
}

// Chunk is the set of files a webpack chunk is made of
type Chunk struct {
	JS  []string `json:"js"`
	CSS []string `json:"css"`
}

// ChunkTable maps chunk names to chunks, preserving the order in which the
// chunks appear in the manifest. A table is filled by BuildChunkTable and is
// read-only afterwards: Get and Each hand out copies.
type ChunkTable struct {
	names  []string
	chunks map[string]Chunk
}

// NewChunkTable creates an empty chunk table
func NewChunkTable() *ChunkTable {
	return &ChunkTable{
		chunks: make(map[string]Chunk),
	}
}

// set adds or replaces a chunk. A replaced chunk keeps its original position.
func (t *ChunkTable) set(name string, chunk Chunk) {
	if _, exists := t.chunks[name]; !exists {
		t.names = append(t.names, name)
	}
	t.chunks[name] = chunk
}

// Get returns the chunk with the given name
func (t *ChunkTable) Get(name string) (Chunk, bool) {
	chunk, ok := t.chunks[name]
	return chunk.clone(), ok
}

// Names returns a copy of the chunk names in manifest order
func (t *ChunkTable) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Len returns the number of chunks
func (t *ChunkTable) Len() int {
	return len(t.names)
}

// Each calls fn for every chunk in manifest order
func (t *ChunkTable) Each(fn func(name string, chunk Chunk)) {
	for _, name := range t.names {
		fn(name, t.chunks[name].clone())
	}
}

// MarshalJSON encodes the table as an object whose keys follow manifest order
func (t *ChunkTable) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, name := range t.names {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(t.chunks[name])
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, value...)
	}
	return append(buf, '}'), nil
}

func (c Chunk) clone() Chunk {
	return Chunk{JS: slices.Clone(c.JS), CSS: slices.Clone(c.CSS)}
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 4 && string(raw) == "null"
}
