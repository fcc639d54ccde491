package nlp

import (
	"errors"
	"sync"
)

// fakeAnalyzer returns a canned document, error or panic.
type fakeAnalyzer struct {
	doc   Document
	err   error
	panic any
	// block, when set, is waited on by every Analyze call.
	block chan struct{}

	mu    sync.Mutex
	calls int
}

func (f *fakeAnalyzer) Name() string { return "fake" }

func (f *fakeAnalyzer) Analyze(text string) (Document, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.block != nil && text != warmupText {
		<-f.block
	}
	if f.panic != nil && text != warmupText {
		panic(f.panic)
	}
	if f.err != nil && text != warmupText {
		return Document{}, f.err
	}
	return f.doc, nil
}

var errBoom = errors.New("boom")

// jobsDoc mirrors what a model produces for "Apple was founded by Steve Jobs."
func jobsDoc() Document {
	return Document{
		Entities: []Entity{
			{Text: "Apple", Label: "ORG"},
			{Text: "Steve Jobs", Label: "PERSON"},
		},
		Tokens: []Token{
			newToken("Apple", "NNP"),
			newToken("was", "VBD"),
			newToken("founded", "VBN"),
			newToken("by", "IN"),
			newToken("Steve", "NNP"),
			newToken("Jobs", "NNP"),
			newToken(".", "."),
		},
	}
}
