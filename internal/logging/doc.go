// Package logging provides a unified logging interface for the calculator front ends.
// It abstracts the underlying logging implementation so the TUI, the REPL and the
// HTTP server log consistently while the calculator core stays free of I/O.
package logging
