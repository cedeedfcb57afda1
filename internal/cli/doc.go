// Package cli implements the subway command line: route, stations and serve.
package cli
