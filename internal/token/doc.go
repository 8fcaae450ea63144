// Package token defines lexical token kinds for Python source.
// Invariants:
//   - Token.Text is copied from the original source slice; Token.Span
//     matches it exactly (Start..End in bytes).
//   - Keywords are classified by the lexer via LookupKeyword; a keyword
//     spelling inside a string, comment, or longer identifier never
//     produces a keyword token.
//   - Indent spans the leading whitespace of the line that deepens the
//     indentation; Dedent is a zero-width marker. Newline terminates a
//     logical line, NL a blank or implicitly-joined physical line.
package token
