package pipeline

import (
	"net/http"
	"regexp"
)

var paramSegment = regexp.MustCompile(`:(\w+)`)

type route struct {
	method  string
	pattern *regexp.Regexp
	params  []string
	chain   []Stage
}

// Router is an ordered, append-only registry of (method, pattern, chain)
// entries. Matching is a linear scan in registration order and the first
// entry whose method and full path match wins; there is no specificity
// ranking. Registration order is therefore a binding contract: register
// specific patterns before general ones that could shadow them.
type Router struct {
	routes []route
}

func NewRouter() *Router {
	return &Router{}
}

// Handle registers a route. Named segments (":id") in pattern are compiled
// once, here, into an anchored regular expression; each matches one run of
// non-separator characters.
func (r *Router) Handle(method, pattern string, chain ...Stage) {
	var names []string
	expr := paramSegment.ReplaceAllStringFunc(pattern, func(m string) string {
		names = append(names, m[1:])
		return "([^/]+)"
	})

	r.routes = append(r.routes, route{
		method:  method,
		pattern: regexp.MustCompile("^" + expr + "$"),
		params:  names,
		chain:   chain,
	})
}

// Dispatch returns the terminal stage that resolves the request against the
// registry and runs the matched route's own chain. No match renders the
// not-found envelope.
func (r *Router) Dispatch() Stage {
	return func(c *Context, _ func()) {
		path := c.Request.URL.Path

		for _, rt := range r.routes {
			if rt.method != c.Request.Method {
				continue
			}
			m := rt.pattern.FindStringSubmatch(path)
			if m == nil {
				continue
			}

			params := make(map[string]string, len(rt.params))
			for i, name := range rt.params {
				params[name] = m[i+1]
			}
			c.Params = params

			Run(c, rt.chain)
			return
		}

		c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
}
