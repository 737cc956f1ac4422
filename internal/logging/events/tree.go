package events

import "github.com/atomicstack/uvlist/internal/logging"

type TreeTracer struct{}

var Tree = TreeTracer{}

func (TreeTracer) Toggle(id string, expanded bool) {
	logging.Trace("tree.toggle", map[string]interface{}{"id": id, "expanded": expanded})
}

func (TreeTracer) Search(query string, matches, visible int) {
	logging.Trace("tree.search", map[string]interface{}{
		"query":   query,
		"matches": matches,
		"visible": visible,
	})
}

func (TreeTracer) Reset(visible int) {
	logging.Trace("tree.reset", map[string]interface{}{"visible": visible})
}
