package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet owns every source text of a run. Spans refer to files by FileID,
// so one FileSet is shared by all diagnostics of a run. Adding the same path
// twice keeps both versions; lookups by path see the newest.
type FileSet struct {
	files  []File
	byPath map[string]FileID
}

func NewFileSet() *FileSet {
	return &FileSet{byPath: map[string]FileID{}}
}

// Add registers already normalized UTF-8 content under path.
func (s *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(s.files))
	if err != nil {
		panic(fmt.Errorf("too many files: %w", err))
	}
	id := FileID(n)
	path = normalizePath(path)
	s.files = append(s.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	s.byPath[path] = id
	return id
}

// AddVirtual registers text that has no file on disk (stdin, tests).
func (s *FileSet) AddVirtual(name string, content []byte) FileID {
	return s.Add(name, content, FileVirtual)
}

// Load reads a UTF-8 file.
func (s *FileSet) Load(path string) (FileID, error) {
	return s.LoadWithEncoding(path, "")
}

// LoadWithEncoding reads path, transcodes it from charset to UTF-8, strips a
// leading BOM and folds CRLF line ends to LF. Byte offsets in spans refer to
// the normalized text.
func (s *FileSet) LoadWithEncoding(path, charset string) (FileID, error) {
	enc, err := CanonicalEncoding(charset)
	if err != nil {
		return 0, err
	}
	raw, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return 0, err
	}
	text, err := Decode(raw, enc)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	var flags FileFlags
	if enc != "" {
		flags |= FileDecoded
	}
	text, bom := removeBOM(text)
	if bom {
		flags |= FileHadBOM
	}
	text, crlf := normalizeCRLF(text)
	if crlf {
		flags |= FileNormalizedCRLF
	}

	id := s.Add(path, text, flags)
	s.files[id].Encoding = enc
	return id, nil
}

func (s *FileSet) Len() int { return len(s.files) }

// Get returns the file for id; id must come from this set.
func (s *FileSet) Get(id FileID) *File { return &s.files[id] }

// GetLatest finds the newest version added under path.
func (s *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := s.byPath[normalizePath(path)]
	return id, ok
}

// Resolve maps both ends of span to line and column.
func (s *FileSet) Resolve(span Span) (start, end LineCol) {
	f := s.Get(span.File)
	return f.LineCol(span.Start), f.LineCol(span.End)
}

// LineCol converts a byte offset of f into a line/column pair.
func (f *File) LineCol(off uint32) LineCol {
	return toLineCol(f.Content, f.LineIdx, off)
}

// GetLine возвращает строку lineNum (с 1) без '\n'; за пределами файла — "".
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 || int(lineNum) > len(f.LineIdx)+1 {
		return ""
	}
	from := int(lineStart(f.LineIdx, int(lineNum)))
	to := len(f.Content)
	if int(lineNum) <= len(f.LineIdx) {
		to = int(f.LineIdx[lineNum-1])
	}
	if from > to {
		return ""
	}
	return string(f.Content[from:to])
}
