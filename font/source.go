package font

import "fmt"

// Source identifies where font data comes from.
// It is either a FileSource or a MemorySource.
type Source interface {
	// String returns a short description for diagnostics.
	String() string

	isSource()
}

// FileSource reads the font from a file path.
type FileSource struct {
	Path string
}

func (FileSource) isSource() {}

func (s FileSource) String() string {
	return "file:" + s.Path
}

// MemorySource reads the font from an in-memory buffer.
// The buffer must not be modified while a Font uses it.
type MemorySource struct {
	Data []byte
}

func (MemorySource) isSource() {}

func (s MemorySource) String() string {
	return fmt.Sprintf("memory:%d bytes", len(s.Data))
}

// NewMemorySource returns a MemorySource holding a private copy of data.
func NewMemorySource(data []byte) MemorySource {
	buf := make([]byte, len(data))
	copy(buf, data)
	return MemorySource{Data: buf}
}
