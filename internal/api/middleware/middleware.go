// Package middleware provides the cross-cutting and per-route stages of the
// request pipeline. Cross-cutting stages (recovery, logging, metrics, CORS,
// body parsing) run for every request; the auth stages are chained per route.
package middleware

import "net/http"

// statusRecorder captures the response status for the logging and metrics
// stages. It forwards Flush so streaming responses keep working downstream.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
