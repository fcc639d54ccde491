package nlp

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jdkato/prose/v2"

	"nlpd/internal/common/fsutil"
)

// builtinModelName names the library's embedded English model.
const builtinModelName = "prose-en"

// proseAdapter runs the prose tokenizer, perceptron tagger and entity
// extractor with one model shared by every call.
type proseAdapter struct {
	name  string
	model *prose.Model
}

// NewProseAdapter loads the prose model at path, or the built-in English
// model when path is empty. The model is loaded exactly once.
func NewProseAdapter(path string) (a Analyzer, err error) {
	// prose reports unreadable model files by panicking.
	defer func() {
		if r := recover(); r != nil {
			a, err = nil, fmt.Errorf("prose: %v", r)
		}
	}()
	if strings.TrimSpace(path) == "" {
		// The default model is built when a document is created without one;
		// keep the instance so later documents reuse it.
		doc, err := prose.NewDocument(warmupText, prose.WithSegmentation(false))
		if err != nil {
			return nil, err
		}
		if doc.Model == nil {
			return nil, errors.New("prose: built-in model unavailable")
		}
		return &proseAdapter{name: builtinModelName, model: doc.Model}, nil
	}
	abs, err := fsutil.ResolvePath(path)
	if err != nil {
		return nil, err
	}
	if !fsutil.IsDir(abs) {
		return nil, fmt.Errorf("model directory not found: %s", abs)
	}
	m := prose.ModelFromDisk(abs)
	if m == nil {
		return nil, fmt.Errorf("prose: no model in %s", abs)
	}
	return &proseAdapter{name: filepath.Base(abs), model: m}, nil
}

func (a *proseAdapter) Name() string { return a.name }

func (a *proseAdapter) Analyze(text string) (Document, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.UsingModel(a.model),
	)
	if err != nil {
		return Document{}, err
	}
	ents := doc.Entities()
	toks := doc.Tokens()
	out := Document{
		Entities: make([]Entity, 0, len(ents)),
		Tokens:   make([]Token, 0, len(toks)),
	}
	for _, e := range ents {
		out.Entities = append(out.Entities, Entity{Text: e.Text, Label: e.Label})
	}
	for _, t := range toks {
		out.Tokens = append(out.Tokens, newToken(t.Text, t.Tag))
	}
	return out, nil
}

// newToken derives the lexical attributes for one tagged token.
func newToken(text, tag string) Token {
	pos := CoarsePOS(tag)
	return Token{
		Text:    text,
		Tag:     tag,
		POS:     pos,
		IsStop:  IsStopWord(text),
		IsPunct: pos == POSPunct || IsPunctuation(text),
	}
}
