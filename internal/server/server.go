package server

import (
	"github.com/valyala/fasthttp"
)

// ListenAndServe starts the calculation server on the given address.
// Blocks until the listener fails.
func ListenAndServe(addr string) error {
	h := NewHandler()
	return fasthttp.ListenAndServe(addr, h.Route)
}
