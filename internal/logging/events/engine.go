package events

import "github.com/atomicstack/uvlist/internal/logging"

type EngineTracer struct{}

type PoolTracer struct{}

var (
	Engine = EngineTracer{}
	Pool   = PoolTracer{}
)

func (EngineTracer) Load(count int) {
	logging.Trace("engine.load", map[string]interface{}{"count": count})
}

// Recompute is called on every frame, so the payload is only built when
// tracing is on.
func (EngineTracer) Recompute(first, last, resident, padding, total, scrollTop int) {
	if !logging.TraceEnabled() {
		return
	}
	logging.Trace("engine.recompute", map[string]interface{}{
		"first":     first,
		"last":      last,
		"resident":  resident,
		"padding":   padding,
		"total":     total,
		"scrollTop": scrollTop,
	})
}

func (EngineTracer) Resize(id string, oldSize, newSize, adjust int) {
	logging.Trace("engine.resize", map[string]interface{}{
		"id":     id,
		"old":    oldSize,
		"new":    newSize,
		"adjust": adjust,
	})
}

func (EngineTracer) Scroll(top int) {
	if !logging.TraceEnabled() {
		return
	}
	logging.Trace("engine.scroll", map[string]interface{}{"top": top})
}

func (EngineTracer) ScrollSuppressed(top int) {
	logging.Trace("engine.scroll-suppressed", map[string]interface{}{"top": top})
}

func (EngineTracer) ScrollTo(index, top int) {
	logging.Trace("engine.scroll-to", map[string]interface{}{"index": index, "top": top})
}

func (PoolTracer) Allocate(uid, total int) {
	logging.Trace("pool.allocate", map[string]interface{}{"uid": uid, "allocated": total})
}
