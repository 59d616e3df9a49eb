// ABOUTME: Middleware chaining utility for composing HTTP middleware
// ABOUTME: Applies middleware in declaration order (first is outermost)

package middleware

import "net/http"

// Middleware wraps a handler with additional behavior.
type Middleware func(http.HandlerFunc) http.HandlerFunc

// Chain applies middleware to a handler so the first listed middleware
// is the outermost: Chain(h, a, b) serves requests as a(b(h)).
func Chain(h http.HandlerFunc, middlewares ...Middleware) http.HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
