// Package metrics exposes Prometheus collectors for route queries.
//
// Metrics implements planner.Observer, so a Planner built with
// planner.WithObserver(m) feeds it directly. Collectors live on a private
// registry created by NewRegistry and are served by Handler.
package metrics
