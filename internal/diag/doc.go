// Package diag carries diagnostics produced while tokenizing and
// extracting. Phases report through the Reporter interface; the CLI
// collects diagnostics into a bounded Bag and formats them via diagfmt.
package diag
