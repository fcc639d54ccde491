package nlp

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"nlpd/pkg/types"
)

// Host owns the single loaded model for the lifetime of the process.
type Host struct {
	analyzer Analyzer
	log      *zerolog.Logger

	// Admission gate: queueCh holds waiting and running callers,
	// inflightCh only running ones.
	queueCh    chan struct{}
	inflightCh chan struct{}
	maxWait    time.Duration

	draining atomic.Bool
}

// New loads the model described by cfg and runs a warm-up analysis. Any
// failure is reported as a startup failure; no Host is returned.
func New(cfg Config) (*Host, error) {
	cfg = cfg.withDefaults()
	name := cfg.ModelPath
	if name == "" {
		name = builtinModelName
	}
	an := cfg.Analyzer
	if an == nil {
		start := time.Now()
		var err error
		an, err = NewProseAdapter(cfg.ModelPath)
		if err != nil {
			return nil, startupError{model: name, err: err}
		}
		cfg.Logger.Info().Str("model", an.Name()).Dur("dur", time.Since(start)).Msg("model loaded")
	}
	h := &Host{
		analyzer:   an,
		log:        cfg.Logger,
		queueCh:    make(chan struct{}, cfg.MaxQueueDepth+cfg.MaxInflight),
		inflightCh: make(chan struct{}, cfg.MaxInflight),
		maxWait:    cfg.MaxWait,
	}
	if _, err := h.run(warmupText); err != nil {
		return nil, startupError{model: an.Name(), err: fmt.Errorf("warm-up: %w", err)}
	}
	return h, nil
}

// Ready reports whether the Host accepts new work. It turns false once Drain
// is called; a Host that failed to load is never constructed.
func (h *Host) Ready() bool { return h != nil && h.analyzer != nil && !h.draining.Load() }

// Drain stops admitting new analyses. Calls already admitted run to
// completion. Used on shutdown so load balancers stop routing here.
func (h *Host) Drain() {
	if h.draining.CompareAndSwap(false, true) {
		h.log.Info().Msg("draining")
	}
}

// ModelName returns the name of the loaded model.
func (h *Host) ModelName() string { return h.analyzer.Name() }

// Analyze runs the model over text.
func (h *Host) Analyze(ctx context.Context, text string) (Document, error) {
	if !utf8.ValidString(text) {
		return Document{}, ErrInvalidInput("text is not valid UTF-8")
	}
	if strings.TrimSpace(text) == "" {
		return Document{}, nil
	}
	release, err := h.admit(ctx)
	if err != nil {
		return Document{}, err
	}
	defer release()
	doc, err := h.run(text)
	if err != nil {
		h.log.Error().Err(err).Int("text_len", len(text)).Msg("analysis failed")
		return Document{}, err
	}
	return doc, nil
}

// Extract analyzes text and returns its entity and meaningful-token spans.
func (h *Host) Extract(ctx context.Context, text string) (types.Extraction, error) {
	doc, err := h.Analyze(ctx, text)
	if err != nil {
		return types.Extraction{}, err
	}
	return Extract(doc), nil
}

// run calls the analyzer, turning errors and panics into internal errors.
func (h *Host) run(text string) (doc Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = Document{}, internalError{err: fmt.Errorf("panic: %v", r)}
		}
	}()
	doc, err = h.analyzer.Analyze(text)
	if err != nil {
		return Document{}, internalError{err: err}
	}
	return doc, nil
}
