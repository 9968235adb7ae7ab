package feed

import "sync/atomic"

// Generation hands out request tokens so that a fetch superseded by a newer
// one has its result discarded on arrival instead of overwriting newer state.
// "Last request wins" is decided by token, not by completion order.
type Generation struct {
	n atomic.Uint64
}

// Next marks the start of a new fetch and returns its token. Any token issued
// earlier is superseded from this point on.
func (g *Generation) Next() uint64 {
	return g.n.Add(1)
}

// Accept reports whether a completed fetch's result should be applied. Only
// the most recently issued token is accepted.
func (g *Generation) Accept(token uint64) bool {
	return token == g.n.Load()
}
