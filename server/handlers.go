package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/subway/planner"
	"github.com/katalvlaran/subway/search"
	"github.com/katalvlaran/subway/station"
)

// Error codes carried in the "code" field of error responses.
const (
	CodeBadRequest  = "bad_request"
	CodeBadStrategy = "bad_strategy"
	CodeNotFound    = "not_found"
	CodeNoPath      = "no_path"
	CodeSearchLimit = "search_limit"
	CodeTimeout     = "timeout"
	CodeInternal    = "internal"
)

type healthResponse struct {
	Status     string `json:"status"`
	Stations   int    `json:"stations"`
	Lines      int    `json:"lines"`
	Components int    `json:"components"`
}

type routeResponse struct {
	*planner.Route
	Stops int `json:"stops"`
}

type stationResponse struct {
	Station   station.Station `json:"station"`
	Neighbors []string        `json:"neighbors"`
	Transfer  bool            `json:"transfer"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (server *Server) handleHealth(writer http.ResponseWriter, _ *http.Request) {
	writeJSON(writer, http.StatusOK, healthResponse{
		Status:     "ok",
		Stations:   len(server.planner.Stations()),
		Lines:      len(server.planner.Lines()),
		Components: len(server.planner.Components()),
	})
}

func (server *Server) handleRoute(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()
	from := strings.TrimSpace(query.Get("from"))
	to := strings.TrimSpace(query.Get("to"))
	if from == "" || to == "" {
		writeError(writer, http.StatusBadRequest, CodeBadRequest, "from and to are required")
		return
	}
	strategy := strings.TrimSpace(query.Get("strategy"))
	if strategy == "" {
		strategy = server.strategy
	}

	key := strategy + "\x00" + from + "\x00" + to
	if server.cache != nil {
		cached, err := server.cache.Get(key)
		server.cacheLookup(err == nil)
		if err == nil {
			writeJSON(writer, http.StatusOK, cached)
			return
		}
	}

	route, err := server.planner.Plan(request.Context(), strategy, from, to)
	if err != nil {
		writeRouteError(writer, err)
		return
	}

	response := routeResponse{Route: route, Stops: route.Stops()}
	if server.cache != nil {
		_ = server.cache.Set(key, response)
	}
	writeJSON(writer, http.StatusOK, response)
}

func (server *Server) handleStations(writer http.ResponseWriter, request *http.Request) {
	transfers := false
	if raw := request.URL.Query().Get("transfers"); raw != "" {
		var err error
		if transfers, err = strconv.ParseBool(raw); err != nil {
			writeError(writer, http.StatusBadRequest, CodeBadRequest, "transfers must be a boolean")
			return
		}
	}

	if !transfers {
		writeJSON(writer, http.StatusOK, server.planner.Stations())
		return
	}

	names := server.planner.Transfers()
	out := make([]station.Station, 0, len(names))
	for _, name := range names {
		s, err := server.planner.Station(name)
		if err != nil {
			writeError(writer, http.StatusInternalServerError, CodeInternal, err.Error())
			return
		}
		out = append(out, s)
	}
	writeJSON(writer, http.StatusOK, out)
}

func (server *Server) handleStation(writer http.ResponseWriter, request *http.Request) {
	// chi routes on RawPath when it is set, leaving the parameter escaped.
	name := chi.URLParam(request, "name")
	if request.URL.RawPath != "" {
		var err error
		if name, err = url.PathUnescape(name); err != nil {
			writeError(writer, http.StatusBadRequest, CodeBadRequest, err.Error())
			return
		}
	}

	s, err := server.planner.Station(name)
	if err != nil {
		writeRouteError(writer, err)
		return
	}
	neighbors, err := server.planner.Neighbors(name)
	if err != nil {
		writeRouteError(writer, err)
		return
	}

	transfer := false
	for _, t := range server.planner.Transfers() {
		if t == name {
			transfer = true
			break
		}
	}

	writeJSON(writer, http.StatusOK, stationResponse{Station: s, Neighbors: neighbors, Transfer: transfer})
}

func (server *Server) cacheLookup(hit bool) {
	if server.metrics != nil {
		server.metrics.CacheLookup(hit)
	}
}

func writeRouteError(writer http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, planner.ErrUnknownStrategy):
		writeError(writer, http.StatusBadRequest, CodeBadStrategy, err.Error())
	case errors.Is(err, station.ErrNotFound):
		writeError(writer, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, search.ErrNoPathFound):
		writeError(writer, http.StatusNotFound, CodeNoPath, err.Error())
	case errors.Is(err, search.ErrExpansionLimit):
		writeError(writer, http.StatusUnprocessableEntity, CodeSearchLimit, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(writer, http.StatusGatewayTimeout, CodeTimeout, err.Error())
	default:
		writeError(writer, http.StatusInternalServerError, CodeInternal, err.Error())
	}
}

func writeJSON(writer http.ResponseWriter, status int, v any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(writer http.ResponseWriter, status int, code, msg string) {
	writeJSON(writer, status, errorResponse{Error: msg, Code: code})
}
