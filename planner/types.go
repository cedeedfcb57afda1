package planner

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors.
var (
	// ErrUnknownStrategy is returned by Plan for a strategy name it does not know.
	ErrUnknownStrategy = errors.New("planner: unknown strategy")

	// ErrNilLines is returned by New when no network data is given.
	ErrNilLines = errors.New("planner: lines are nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("planner: option violation")
)

// Strategy names accepted by Plan.
const (
	StrategyDistance = "distance"
	StrategyStops    = "stops"
	StrategyOptimal  = "optimal"
)

// Strategies lists the accepted strategy names in display order.
func Strategies() []string {
	return []string{StrategyDistance, StrategyStops, StrategyOptimal}
}

// Outcome labels passed to an Observer.
const (
	OutcomeFound    = "found"
	OutcomeNoPath   = "no_path"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Route is a planned journey.
type Route struct {
	Stations   []string `json:"stations"`
	DistanceKm float64  `json:"distanceKm"`
	Strategy   string   `json:"strategy"`
}

// Stops returns the number of hops on the route.
func (r *Route) Stops() int {
	if len(r.Stations) == 0 {
		return 0
	}
	return len(r.Stations) - 1
}

// Observer receives one call per query. expansions and peakFrontier count
// the work done by whichever algorithm ran; they are 0 when it never started.
type Observer interface {
	Observe(strategy, outcome string, expansions, peakFrontier int, elapsed time.Duration)
}

// Options configures a Planner.
type Options struct {
	// MaxExpansions bounds the distance search. 0 means unbounded.
	MaxExpansions int

	// Timeout, if > 0, bounds every query.
	Timeout time.Duration

	// ReachabilityCheck runs a breadth-first reachability test before the
	// distance search, so a disconnected destination fails fast.
	ReachabilityCheck bool

	// Observer, if set, is told about every query.
	Observer Observer

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with the reachability check enabled and no
// bounds.
func DefaultOptions() Options {
	return Options{ReachabilityCheck: true}
}

// WithMaxExpansions bounds the distance search. Negative values are rejected.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max expansions must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithTimeout bounds every query. Negative values are rejected.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: timeout must be >= 0, got %s", ErrOptionViolation, d)
			return
		}
		o.Timeout = d
	}
}

// WithReachabilityCheck toggles the breadth-first pre-check.
func WithReachabilityCheck(enabled bool) Option {
	return func(o *Options) { o.ReachabilityCheck = enabled }
}

// WithObserver installs an Observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}
