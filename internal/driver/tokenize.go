package driver

import (
	"pyapi/internal/diag"
	"pyapi/internal/lexer"
	"pyapi/internal/source"
	"pyapi/internal/token"
)

// TokenizeResult bundles everything a caller needs after lexing one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a file from disk and lexes it. Lexical problems land in
// the Bag; only I/O failures return an error.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource lexes in-memory content under a virtual file name.
func TokenizeSource(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.ScanAll(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
