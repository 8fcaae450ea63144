package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet manages a collection of source files and resolves spans to
// line/column positions.
type FileSet struct {
	files   []File
	index   map[string]FileID // path -> id
	baseDir string
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// NewFileSetWithBase creates a FileSet with the given base directory for
// relative path formatting.
func NewFileSetWithBase(baseDir string) *FileSet {
	fs := NewFileSet()
	fs.baseDir = baseDir
	return fs
}

// BaseDir returns the current base directory, falling back to the working
// directory when none was set.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Add stores a file from normalized bytes, computes LineIdx and Hash, and
// returns a new FileID. It always creates a new FileID even if a file with
// the same path already exists.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	hash := sha256.Sum256(content)
	lineIdx := buildLineIndex(content)
	normalizedPath := normalizePath(path)

	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		LineIdx: lineIdx,
		Hash:    hash,
		Flags:   flags,
	})
	fileSet.index[normalizedPath] = id
	return id
}

// Load reads a file from disk, normalizes CRLF/BOM, and calls Add.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds a virtual file (stdin, test, or generated) with the
// FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Get returns the file metadata for the given ID.
func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

// GetByPath returns the *File for path, if it was loaded into this FileSet.
func (fileSet *FileSet) GetByPath(path string) (*File, bool) {
	if id, ok := fileSet.index[normalizePath(path)]; ok {
		return &fileSet.files[id], true
	}
	return nil, false
}

// Resolve converts a span into line and column positions. The end position
// is resolved at the exclusive End offset.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// LineOf returns the 1-based line number containing the byte offset.
func (f *File) LineOf(off uint32) uint32 {
	return toLineCol(f.LineIdx, off).Line
}

// LineCount returns the number of physical lines in the file. A trailing
// newline does not start an extra line.
func (f *File) LineCount() uint32 {
	n, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	if lenContent == 0 {
		return 0
	}
	if n > 0 && f.LineIdx[n-1] == lenContent-1 {
		return n
	}
	return n + 1
}

// lineBounds returns the [start, end) byte range of the 1-based line,
// excluding its trailing newline. ok is false when the line does not exist.
func (f *File) lineBounds(lineNum uint32) (start, end uint32, ok bool) {
	if lineNum == 0 || lineNum > f.LineCount() {
		return 0, 0, false
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	if lineNum > 1 {
		start = f.LineIdx[lineNum-2] + 1
	}
	if int(lineNum-1) < len(f.LineIdx) {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}
	return start, end, true
}

// Line returns the text of the 1-based line without its trailing newline.
// Nonexistent lines yield the empty string.
func (f *File) Line(lineNum uint32) string {
	start, end, ok := f.lineBounds(lineNum)
	if !ok {
		return ""
	}
	return string(f.Content[start:end])
}

// LineSpan returns the raw text of lines first..last inclusive, keeping
// every newline that is present in the file (including a trailing one).
func (f *File) LineSpan(first, last uint32) string {
	if first == 0 || first > last {
		return ""
	}
	start, _, ok := f.lineBounds(first)
	if !ok {
		return ""
	}
	count := f.LineCount()
	if last > count {
		last = count
	}
	_, end, _ := f.lineBounds(last)
	// keep the line terminator when the file has one
	if int(last-1) < len(f.LineIdx) {
		end = f.LineIdx[last-1] + 1
	}
	return string(f.Content[start:end])
}
