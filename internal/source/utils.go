package source

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
)

// normalizeCRLF replaces every \r\n with \n, leaving lone \r untouched.
// Returns the (possibly new) slice and whether any replacement happened.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

// buildLineIndex records the byte offset of every '\n' in content.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 64)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol converts a byte offset into a 1-based line/column pair.
// A '\n' byte belongs to the line it terminates.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// number of newlines strictly before off
	n := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= off })

	var lineStart uint32
	if n > 0 {
		lineStart = lineIdx[n-1] + 1
	}
	return LineCol{Line: uint32(n) + 1, Col: off - lineStart + 1}
}

func normalizePath(p string) string {
	// single form for cross-platform diffs
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath resolves p to an absolute path.
func AbsolutePath(p string) (string, error) {
	return filepath.Abs(p)
}

// RelativePath resolves p relative to base.
func RelativePath(p, base string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return filepath.Rel(base, abs)
}

// BaseName returns the final path element of p.
func BaseName(p string) string {
	return filepath.Base(p)
}

// FormatPath formats the file path according to mode.
// mode: "absolute", "relative", "basename", "auto"
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path

	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path

	case "basename":
		return BaseName(f.Path)

	case "auto":
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return BaseName(f.Path)

	default:
		return f.Path
	}
}
