// Package httpx holds the HTTP plumbing shared by every handler: middleware
// composition, JSON responses, request decoding, rate limiting and CORS.
package httpx

import "net/http"

type Middleware func(http.Handler) http.Handler

// Chain wraps h so that mws run in the order given: the first middleware
// sees the request first.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// ChainFunc is Chain for a handler function.
func ChainFunc(fn http.HandlerFunc, mws ...Middleware) http.Handler {
	return Chain(fn, mws...)
}
