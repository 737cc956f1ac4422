package events

import "github.com/atomicstack/uvlist/internal/logging"

type ListTracer struct{}

type FeedTracer struct{}

type CommandTracer struct{}

var (
	List    = ListTracer{}
	Feed    = FeedTracer{}
	Command = CommandTracer{}
)

func (ListTracer) Selected(id string, index int) {
	logging.Trace("list.selected", map[string]interface{}{"id": id, "index": index})
}

func (ListTracer) ReachedStart() {
	logging.Trace("list.reached-start", nil)
}

func (ListTracer) ReachedEnd(count int) {
	logging.Trace("list.reached-end", map[string]interface{}{"count": count})
}

func (ListTracer) Cursor(index int) {
	logging.Trace("list.cursor", map[string]interface{}{"cursor": index})
}

func (FeedTracer) Event(kind string, count int) {
	logging.Trace("feed.event", map[string]interface{}{"kind": kind, "count": count})
}

func (FeedTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("feed.error", map[string]interface{}{"error": err.Error()})
}

func (CommandTracer) Queue(name string) {
	logging.Trace("command.queue", map[string]interface{}{"event": name})
}

func (CommandTracer) Result(name, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"event": name, "msg": msgType})
}
