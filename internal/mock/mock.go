// Package mock produces demo data for the list and tree.
package mock

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/atomicstack/uvlist/internal/item"
)

const filler = " some additional words"

// Generator hands out items with unique, increasing ids at the end of the
// list and decreasing ids at the start. It is safe for concurrent use.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	next  int
	first int
}

// New returns a generator seeded with seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Items returns n items that follow every item handed out so far.
func (g *Generator) Items(n int) []item.Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]item.Item, 0, max(0, n))
	for i := 0; i < n; i++ {
		out = append(out, g.make(g.next))
		g.next++
	}
	return out
}

// Before returns n items that precede every item handed out so far, in list
// order.
func (g *Generator) Before(n int) []item.Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]item.Item, max(0, n))
	for i := n - 1; i >= 0; i-- {
		g.first--
		out[i] = g.make(g.first)
	}
	return out
}

// Count returns how many items were generated after the first one.
func (g *Generator) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.next
}

// Tree returns roots nested depth levels deep with fanout children per node.
func (g *Generator) Tree(roots, depth, fanout int) []item.Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]item.Item, 0, max(0, roots))
	for i := 0; i < roots; i++ {
		out = append(out, g.node(fmt.Sprintf("%d", i+1), depth, fanout))
	}
	return out
}

func (g *Generator) node(path string, depth, fanout int) item.Item {
	n := g.next
	g.next++
	it := g.make(n)
	it.Label = "Node " + path + " " + g.words()
	it.Fields["path"] = path
	if depth <= 1 {
		return it
	}
	for i := 0; i < fanout; i++ {
		it.Children = append(it.Children, g.node(fmt.Sprintf("%s.%d", path, i+1), depth-1, fanout))
	}
	return it
}

func (g *Generator) make(n int) item.Item {
	content := fmt.Sprintf("Content of good old item number %d%s", n, g.words())
	return item.Item{
		ID:    item.ID(n),
		Label: content,
		Fields: map[string]interface{}{
			"n":       n,
			"content": content,
		},
	}
}

func (g *Generator) words() string {
	return strings.Repeat(filler, g.rng.Intn(10))
}
