// Package nlp hosts the loaded language model and turns its output into the
// flat span list served by the HTTP API. It is structured into small files by
// concern:
//
//   - host.go: Host type, constructor, Analyze/Extract entry points.
//   - config.go: Config and package defaults; New applies defaults.
//   - document.go: model-independent Document, Entity and Token types.
//   - extract.go: the entity-then-token reshaping into types.Span.
//   - admission.go: bounded in-flight/queue gate around the model call.
//   - errors.go: error types and helpers (IsInvalidInput, IsTooBusy, ...).
//   - adapter.go, adapter_prose.go: Analyzer interface and the prose backend.
//   - postag.go, lexattrs.go: coarse POS mapping, stop words, punctuation.
//
// The Host is immutable once New returns and is safe for concurrent use.
// Callers outside this package should only rely on New, Host methods and the
// error predicates.
package nlp
