package nlp

// Analyzer abstracts the model runtime used by the Host. Implementations must
// tolerate concurrent Analyze calls unless the Host is configured with
// MaxInflight 1.
type Analyzer interface {
	// Name identifies the loaded model in logs and status output.
	Name() string
	// Analyze runs the model over text. The returned Document is owned by the
	// caller.
	Analyze(text string) (Document, error)
}
