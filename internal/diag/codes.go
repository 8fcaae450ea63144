package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexBadIndent          Code = 1004
	LexLoneContinuation   Code = 1005
	LexUnmatchedBracket   Code = 1006

	// Extraction
	ExtInfo            Code = 2000
	ExtStreamExhausted Code = 2001
	ExtMissingName     Code = 2002

	// I/O
	IOLoadFileError Code = 4001

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string",
	LexBadNumber:          "Bad number",
	LexBadIndent:          "Inconsistent indentation",
	LexLoneContinuation:   "Stray line continuation",
	LexUnmatchedBracket:   "Unmatched closing bracket",
	ExtInfo:               "Extraction information",
	ExtStreamExhausted:    "Token stream exhausted inside a definition header",
	ExtMissingName:        "Definition keyword without a name",
	IOLoadFileError:       "I/O load file error",
	ObsInfo:               "Observability information",
	ObsTimings:            "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("EXT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
