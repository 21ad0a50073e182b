// Package diagnostics provides a passive, append-only data structure that
// accumulates diagnostic entries (errors, warnings, info, traces) as the
// table generator's pipeline progresses from a tables/*.spec source file to
// a compiled decodetab.Table. It does not perform I/O or formatting — a
// separate renderer (cmd/generator) consumes the entries to produce output.
//
// This package is build-time only: nothing under internal/decode imports
// it, since the decoder itself must stay allocation-free on the hot path.
package diagnostics
