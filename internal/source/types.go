package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	// FileDecoded is set when the content was transcoded to UTF-8 on load.
	FileDecoded
)

// File captures metadata and content for a single source file.
type File struct {
	ID       FileID
	Path     string
	Content  []byte
	LineIdx  []uint32 // смещения всех '\n'
	Hash     [32]byte
	Flags    FileFlags
	Encoding string // кодировка на диске, "" для utf-8
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, в символах
}
