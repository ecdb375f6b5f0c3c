// Package http implements the REST transport of the CineTrack server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, response compression, CORS and rate limiting are handled in this
// package before requests are delegated to the service layer.
//
// Every error answer is a JSON object of the form {"message": "..."}.
package http
