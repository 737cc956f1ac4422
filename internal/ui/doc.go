// Package ui hosts a virtualized list in a Bubble Tea program. The Model owns
// one engine.Engine and, in tree mode, one tree.Tree, and plays the part of
// the rendering host: it paints resident views, measures them and reports the
// heights back.
//
// Message flow:
//   - Bubble Tea invokes Model.Update, which routes each message through a
//     typed handler registry.
//   - Scroll input (mouse wheel) only records the new position in the engine
//     and schedules a frameMsg. Positions arriving before the frame fires
//     coalesce, so a burst of wheel events costs one recompute.
//   - Cursor movement scrolls programmatically with EnsureVisible, which
//     recomputes immediately.
//   - Data changes (feed events, paging, tree toggles and searches) reload the
//     engine. With non-blocking loads the recompute waits for a flushMsg that
//     carries the load generation; stale generations are dropped.
//
// Measurement:
//   - After every recompute settle renders the resident and prepared views,
//     measures them with lipgloss.Height and hands the batch to
//     engine.Measure. Rendered output is cached per view UID and reused while
//     the view stays bound to the same item and display state.
//
// Events:
//   - Frames flagged ReachedStart/ReachedEnd and item selection are turned into
//     commands by internal/ui/command so listeners receive them as regular
//     messages. ReachedEndMsg loads another page when paging is enabled.
package ui
