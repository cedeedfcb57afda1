// Package subway finds routes through a subway network.
//
// Stations are loaded per line, in travel order, from an HTML table or a CSV
// file. Consecutive stations of a line are adjacent; a station served by
// several lines joins them. Routes are found by a path search that keeps
// every candidate path on a frontier and re-ranks it by cumulative
// great-circle distance after each expansion.
//
// Layout:
//
//	geo/        haversine distance between coordinates
//	station/    station records, ordered lines and the name directory
//	network/    adjacency graph built from lines
//	search/     the frontier re-ranking route search
//	bfs/        fewest-stops routes and reachability
//	dfs/        connected components of the network
//	dijkstra/   minimum-distance routes
//	loader/     HTML and CSV network data
//	planner/    one loaded network answering route queries
//	config/     YAML/TOML configuration
//	metrics/    Prometheus collectors for route queries
//	server/     HTTP JSON API
//	cmd/subway  command line: route, stations, serve
//
// Quick example:
//
//	A───B───C        line 1: A B C
//	    │
//	    D            line 2: B D
//
//	subway --network lines.csv route A D   →   A -> B -> D
package subway
