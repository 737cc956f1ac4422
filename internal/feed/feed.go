// Package feed streams collection mutations on an interval, standing in for a
// live data source.
package feed

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/uvlist/internal/item"
	"github.com/atomicstack/uvlist/internal/logging/events"
	"github.com/atomicstack/uvlist/internal/mock"
	"github.com/atomicstack/uvlist/internal/throttle"
)

// Kind is the mutation carried by an Event.
type Kind int

const (
	// Append adds a batch of items at the end.
	Append Kind = iota
	// Push adds one item at the end.
	Push
	// Unshift adds one item at the start.
	Unshift
	// Swap exchanges the first two items.
	Swap
)

func (k Kind) String() string {
	switch k {
	case Append:
		return "append"
	case Push:
		return "push"
	case Unshift:
		return "unshift"
	case Swap:
		return "swap"
	default:
		return "unknown"
	}
}

// Event is one mutation.
type Event struct {
	Kind  Kind
	Items []item.Item
	Err   error
}

// Options configures a Feed.
type Options struct {
	Interval time.Duration
	// Batch is the number of items in an Append event.
	Batch int
	// Kinds is the cycle of mutations emitted; empty means all kinds.
	Kinds []Kind
}

// Feed emits events from its own goroutine until stopped.
type Feed struct {
	gen      *mock.Generator
	opts     Options
	throttle *throttle.Throttle

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// New starts a feed that draws new items from gen.
func New(gen *mock.Generator, opts Options) *Feed {
	if opts.Batch <= 0 {
		opts.Batch = 100
	}
	if len(opts.Kinds) == 0 {
		opts.Kinds = []Kind{Append, Push, Unshift, Swap}
	}
	ctx, cancel := context.WithCancel(context.Background())
	f := &Feed{
		gen:      gen,
		opts:     opts,
		throttle: throttle.New(opts.Interval / 2),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}
	f.wg.Add(1)
	go f.run()
	go func() {
		f.wg.Wait()
		close(f.events)
	}()
	return f
}

// Events returns the event channel. It is closed after Stop once the
// goroutine exits.
func (f *Feed) Events() <-chan Event {
	return f.events
}

// Stop cancels the feed.
func (f *Feed) Stop() {
	f.cancel()
}

// Wait blocks until the feed goroutine has exited.
func (f *Feed) Wait() {
	f.wg.Wait()
}

func (f *Feed) run() {
	defer f.wg.Done()
	if f.opts.Interval <= 0 {
		return
	}
	ticker := time.NewTicker(f.opts.Interval)
	defer ticker.Stop()
	for i := 0; ; i++ {
		select {
		case <-f.ctx.Done():
			return
		case <-ticker.C:
		}
		f.throttle.Wait()
		evt := f.next(f.opts.Kinds[i%len(f.opts.Kinds)])
		select {
		case <-f.ctx.Done():
			return
		case f.events <- evt:
			events.Feed.Event(evt.Kind.String(), len(evt.Items))
		}
	}
}

func (f *Feed) next(kind Kind) Event {
	switch kind {
	case Append:
		return Event{Kind: kind, Items: f.gen.Items(f.opts.Batch)}
	case Push:
		return Event{Kind: kind, Items: f.gen.Items(1)}
	case Unshift:
		return Event{Kind: kind, Items: f.gen.Before(1)}
	default:
		return Event{Kind: kind}
	}
}
