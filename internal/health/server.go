// Package health runs the liveness endpoint for hosting-platform probes.
package health

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns the probe handler: /metrics serves Prometheus metrics,
// every other path answers 200 with body "OK" so the hosting platform's
// probe passes regardless of the path it is configured with.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	return mux
}

// ListenAndServe blocks serving the probe handler on the given port. It
// shares no state with message handling and runs in its own goroutine.
func ListenAndServe(port int) error {
	return http.ListenAndServe(fmt.Sprintf(":%d", port), Handler())
}
