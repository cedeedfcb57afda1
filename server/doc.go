// Package server exposes a Planner over HTTP as a small JSON API.
//
//	GET /api/v1/route?from=A&to=B[&strategy=distance|stops|optimal]
//	GET /api/v1/stations[?transfers=true]
//	GET /api/v1/stations/{name}
//	GET /healthz
//	GET /metrics            (when a registry is configured)
//
// Successful routes are kept in an LRU cache keyed by strategy and endpoints.
// Errors are JSON objects {"error": message, "code": kind}; unknown stations
// and unreachable destinations both answer 404, told apart by code.
package server
