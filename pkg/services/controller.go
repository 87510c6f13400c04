package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/kerbaras/purrfect/pkg/gallery"
	"github.com/kerbaras/purrfect/pkg/sources"
	"go.uber.org/zap"
)

// FetchController performs gallery requests against a Source. Starting a
// fetch cancels the one still in flight, if any. A request older than the one
// in flight is dropped without reaching the source.
type FetchController struct {
	source  sources.Source
	log     *zap.Logger
	timeout time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    uint64
}

func NewFetchController(source sources.Source, log *zap.Logger) *FetchController {
	if log == nil {
		log = zap.NewNop()
	}
	return &FetchController{source: source, log: log}
}

// WithTimeout bounds every request. Zero means no timeout.
func (c *FetchController) WithTimeout(d time.Duration) *FetchController {
	c.timeout = d
	return c
}

// Fetch runs req and reports the outcome. Errors are always *FetchError.
func (c *FetchController) Fetch(ctx context.Context, req gallery.Request) gallery.Result {
	log := c.log.With(
		zap.Uint64("seq", req.Seq),
		zap.Int("page", req.Page),
		zap.Stringer("mode", req.Mode),
	)

	ctx, ok := c.start(ctx, req.Seq)
	if !ok {
		log.Debug("fetch superseded before it started")
		return gallery.Result{Seq: req.Seq, Err: &FetchError{Err: context.Canceled}}
	}
	defer c.finish(req.Seq)

	log.Debug("fetching images")

	images, err := c.source.Images(ctx, req.Page, gallery.PageSize)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Debug("fetch superseded")
		} else {
			log.Warn("fetch failed", zap.Error(err))
		}
		return gallery.Result{Seq: req.Seq, Err: &FetchError{Err: err}}
	}

	log.Debug("fetched images", zap.Int("count", len(images)))
	return gallery.Result{Seq: req.Seq, Images: images}
}

// Cancel aborts the request in flight, if any.
func (c *FetchController) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// start registers seq as the request in flight. It reports false, leaving the
// current request alone, when a newer seq has already started.
func (c *FetchController) start(parent context.Context, seq uint64) (context.Context, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq < c.seq {
		return nil, false
	}
	if c.cancel != nil {
		c.cancel()
	}
	var ctx context.Context
	var cancel context.CancelFunc
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, c.timeout)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}
	c.cancel = cancel
	c.seq = seq
	return ctx, true
}

// finish releases the context of seq unless a newer fetch has replaced it.
func (c *FetchController) finish(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seq == seq && c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
