package nlp

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHost(t *testing.T, fa *fakeAnalyzer, cfg Config) *Host {
	t.Helper()
	cfg.Analyzer = fa
	h, err := New(cfg)
	require.NoError(t, err)
	return h
}

func TestNew_WarmupFailureIsStartupFailure(t *testing.T) {
	fa := &fakeAnalyzer{}
	_, err := New(Config{Analyzer: &failingWarmup{fa}})
	require.Error(t, err)
	assert.True(t, IsStartupFailure(err))
}

type failingWarmup struct{ *fakeAnalyzer }

func (f *failingWarmup) Analyze(string) (Document, error) { return Document{}, errBoom }

func TestNew_MissingModelDirIsStartupFailure(t *testing.T) {
	_, err := New(Config{ModelPath: t.TempDir() + "/missing"})
	require.Error(t, err)
	assert.True(t, IsStartupFailure(err))
}

func TestExtract_ReturnsSpans(t *testing.T) {
	h := newTestHost(t, &fakeAnalyzer{doc: jobsDoc()}, Config{})
	assert.True(t, h.Ready())
	assert.Equal(t, "fake", h.ModelName())
	ex, err := h.Extract(context.Background(), "Apple was founded by Steve Jobs.")
	require.NoError(t, err)
	assert.Len(t, ex.Spans, 5)
	assert.Equal(t, 2, ex.Entities)
}

func TestAnalyze_InvalidUTF8(t *testing.T) {
	h := newTestHost(t, &fakeAnalyzer{}, Config{})
	_, err := h.Analyze(context.Background(), "bad \xff bytes")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

func TestAnalyze_BlankTextSkipsModel(t *testing.T) {
	fa := &fakeAnalyzer{doc: jobsDoc()}
	h := newTestHost(t, fa, Config{})
	before := fa.calls
	ex, err := h.Extract(context.Background(), "   \n")
	require.NoError(t, err)
	assert.Empty(t, ex.Spans)
	assert.NotNil(t, ex.Spans)
	assert.Zero(t, ex.Entities)
	assert.Equal(t, before, fa.calls)
}

func TestAnalyze_ErrorAndPanicAreInternal(t *testing.T) {
	h := newTestHost(t, &fakeAnalyzer{err: errBoom}, Config{})
	_, err := h.Analyze(context.Background(), "x")
	require.Error(t, err)
	assert.True(t, IsInternal(err))
	assert.ErrorIs(t, err, errBoom)

	h = newTestHost(t, &fakeAnalyzer{panic: "kaboom"}, Config{})
	_, err = h.Analyze(context.Background(), "x")
	require.Error(t, err)
	assert.True(t, IsInternal(err))
	assert.Contains(t, err.Error(), "kaboom")
}

func TestAnalyze_CanceledContext(t *testing.T) {
	h := newTestHost(t, &fakeAnalyzer{}, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := h.Analyze(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAdmission_WaitTimeout(t *testing.T) {
	fa := &fakeAnalyzer{block: make(chan struct{})}
	h := newTestHost(t, fa, Config{MaxInflight: 1, MaxQueueDepth: 1, MaxWait: 20 * time.Millisecond})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = h.Analyze(context.Background(), "first")
	}()
	// Wait until the first call holds the in-flight slot.
	require.Eventually(t, func() bool { return len(h.inflightCh) == 1 }, time.Second, time.Millisecond)

	_, err := h.Analyze(context.Background(), "second")
	require.Error(t, err)
	assert.True(t, IsTooBusy(err))
	assert.Equal(t, "wait_timeout", TooBusyReason(err))

	close(fa.block)
	wg.Wait()
	assert.Len(t, h.queueCh, 0)
}

func TestAdmission_QueueFull(t *testing.T) {
	fa := &fakeAnalyzer{block: make(chan struct{})}
	h := newTestHost(t, fa, Config{MaxInflight: 1, MaxQueueDepth: 1, MaxWait: time.Second})

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = h.Analyze(context.Background(), "x")
		}()
	}
	require.Eventually(t, func() bool { return len(h.queueCh) == 2 }, time.Second, time.Millisecond)

	_, err := h.Analyze(context.Background(), "third")
	require.Error(t, err)
	assert.Equal(t, "queue_full", TooBusyReason(err))

	close(fa.block)
	wg.Wait()
}

func TestDrain_RejectsNewWorkAndFinishesAdmitted(t *testing.T) {
	fa := &fakeAnalyzer{doc: jobsDoc(), block: make(chan struct{})}
	h := newTestHost(t, fa, Config{MaxInflight: 1})
	require.True(t, h.Ready())

	done := make(chan error, 1)
	go func() {
		_, err := h.Analyze(context.Background(), "admitted")
		done <- err
	}()
	require.Eventually(t, func() bool { return len(h.inflightCh) == 1 }, time.Second, time.Millisecond)

	h.Drain()
	h.Drain()
	assert.False(t, h.Ready())

	_, err := h.Analyze(context.Background(), "late")
	require.Error(t, err)
	assert.True(t, IsTooBusy(err))
	assert.Equal(t, "draining", TooBusyReason(err))

	close(fa.block)
	require.NoError(t, <-done)
}
