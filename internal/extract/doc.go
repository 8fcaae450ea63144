// Package extract captures Python definition headers from a token stream.
//
// The scanner walks the tokens in source order; each def/class keyword
// starts a signature read that runs through the colon closing the header,
// optionally committing the docstring that follows. Captured definitions
// keep their original tokens, so the renderer can reproduce the exact
// source lines.
package extract
