// Package pipeline implements the request-dispatch engine: an ordered chain
// of stages driven by an explicit continuation, and a first-match-wins path
// router whose matched routes run through the same chain mechanism.
package pipeline

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Stage is one step of a middleware chain. A stage either calls next to hand
// control to the following stage, or writes a terminal response and returns
// without calling it, short-circuiting the rest of the chain. Handlers are
// stages that never call next.
type Stage func(c *Context, next func())

// Run executes stages in order, single-pass. The continuation advances an
// index cursor; a stage that skips next stops the chain for good, and calling
// next past the last stage is a no-op.
func Run(c *Context, stages []Stage) {
	index := 0
	var next func()
	next = func() {
		if index >= len(stages) {
			return
		}
		stage := stages[index]
		index++
		stage(c, next)
	}
	next()
}

// Handler adapts a global stage chain into an http.Handler, building a fresh
// Context per request.
func Handler(log zerolog.Logger, stages []Stage) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := &Context{
			Response: w,
			Request:  r,
			Log:      log,
		}
		Run(c, stages)
	})
}
