package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ironsheep/floor-tools-mcp/internal/boundary"
	"github.com/ironsheep/floor-tools-mcp/internal/floorplan"
	"github.com/ironsheep/floor-tools-mcp/internal/geometry"
	"github.com/ironsheep/floor-tools-mcp/internal/render"
	"github.com/ironsheep/floor-tools-mcp/internal/search"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "floor_load", "floor_render").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn().Err(err).Str("tool", params.Name).Msg("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Resolves the floor plan from the cache or inline data
//  3. Applies default values for optional parameters
//  4. Calls into boundary, search or render
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Floor Plan Information
	case "floor_load":
		return s.handleFloorLoad(args)

	// Containment
	case "floor_contains":
		return s.handleFloorContains(args)
	case "floor_contains_multi":
		return s.handleFloorContainsMulti(args)
	case "floor_cross_check":
		return s.handleFloorCrossCheck(args)

	// Rectangle Search
	case "floor_largest_area":
		return s.handleFloorLargestArea(args)
	case "floor_largest_area_constrained":
		return s.handleFloorLargestAreaConstrained(args)

	// Visualisation
	case "floor_render":
		return s.handleFloorRender(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Shared Argument Handling ===

// planArgs identifies the floor plan a tool works on.
type planArgs struct {
	Path string `json:"path"`
	Data string `json:"data"`
}

// plan resolves a through the cache, or parses the inline data.
func (s *Server) plan(a planArgs) (*floorplan.Floorplan, error) {
	switch {
	case a.Path != "":
		return s.cache.Load(a.Path)
	case a.Data != "":
		return floorplan.FromText("inline", a.Data)
	default:
		return nil, errors.New("either path or data is required")
	}
}

type pointArg struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// candidates converts points, defaulting to the plan's own corners.
func candidates(points []pointArg, plan *floorplan.Floorplan) []geometry.Coordinate {
	if len(points) == 0 {
		return plan.Boundary.Vertices()
	}
	out := make([]geometry.Coordinate, len(points))
	for i, p := range points {
		out[i] = geometry.C(p.X, p.Y)
	}
	return out
}

const (
	strategyParity = "parity"
	strategyFlood  = "flood"
)

// oracle returns the containment classifier named by strategy.
func (s *Server) oracle(plan *floorplan.Floorplan, strategy string) (boundary.Oracle, string, error) {
	switch strategy {
	case "", strategyParity:
		return plan.Boundary, strategyParity, nil
	case strategyFlood:
		ff, err := boundary.NewFloodFill(plan.Boundary, s.cfg.FloodMaxCells)
		if err != nil {
			return nil, "", err
		}
		return ff, strategyFlood, nil
	default:
		return nil, "", fmt.Errorf("unknown strategy %q: expected %q or %q", strategy, strategyParity, strategyFlood)
	}
}

// === Floor Plan Information Handlers ===

func (s *Server) handleFloorLoad(args json.RawMessage) (interface{}, error) {
	var a planArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path != "" {
		return floorplan.LoadInfo(s.cache, a.Path)
	}
	plan, err := s.plan(a)
	if err != nil {
		return nil, err
	}
	return floorplan.Describe(plan), nil
}

// === Containment Handlers ===

type floorContainsArgs struct {
	planArgs
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Strategy string `json:"strategy"`
}

// ContainsResult reports the classification of one cell.
type ContainsResult struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Label     string `json:"label,omitempty"`
	Inside    bool   `json:"inside"`
	OnOutline bool   `json:"on_outline"`
}

func (s *Server) handleFloorContains(args json.RawMessage) (interface{}, error) {
	var a floorContainsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	plan, err := s.plan(a.planArgs)
	if err != nil {
		return nil, err
	}
	oracle, strategy, err := s.oracle(plan, a.Strategy)
	if err != nil {
		return nil, err
	}

	c := geometry.C(a.X, a.Y)
	return map[string]interface{}{
		"strategy": strategy,
		"result": ContainsResult{
			X:         a.X,
			Y:         a.Y,
			Inside:    oracle.Contains(c),
			OnOutline: plan.Boundary.OnOutline(c),
		},
	}, nil
}

type floorContainsMultiArgs struct {
	planArgs
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
	Strategy string `json:"strategy"`
}

func (s *Server) handleFloorContainsMulti(args json.RawMessage) (interface{}, error) {
	var a floorContainsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Points) == 0 {
		return nil, errors.New("points must not be empty")
	}
	plan, err := s.plan(a.planArgs)
	if err != nil {
		return nil, err
	}
	oracle, strategy, err := s.oracle(plan, a.Strategy)
	if err != nil {
		return nil, err
	}

	results := make([]ContainsResult, len(a.Points))
	inside := 0
	for i, p := range a.Points {
		c := geometry.C(p.X, p.Y)
		results[i] = ContainsResult{
			X:         p.X,
			Y:         p.Y,
			Label:     p.Label,
			Inside:    oracle.Contains(c),
			OnOutline: plan.Boundary.OnOutline(c),
		}
		if results[i].Inside {
			inside++
		}
	}

	return map[string]interface{}{
		"strategy":     strategy,
		"results":      results,
		"inside_count": inside,
		"total":        len(results),
	}, nil
}

func (s *Server) handleFloorCrossCheck(args json.RawMessage) (interface{}, error) {
	var a planArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	plan, err := s.plan(a)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := boundary.CrossCheckFlood(plan.Boundary, s.cfg.FloodMaxCells)
	if err != nil {
		return nil, err
	}
	if !res.Agree() {
		s.logger.Warn().
			Str("plan", plan.Name).
			Int("mismatches", res.Mismatches).
			Msg("containment strategies disagree")
	}

	return map[string]interface{}{
		"agree":      res.Agree(),
		"cells":      res.Cells,
		"inside":     res.Inside,
		"mismatches": res.Mismatches,
		"samples":    res.Samples,
		"elapsed_ms": time.Since(start).Milliseconds(),
	}, nil
}

// === Rectangle Search Handlers ===

// SearchResult is the outcome of a rectangle search. When Found is false
// no pair qualified and the pair fields are omitted.
type SearchResult struct {
	Found      bool                 `json:"found"`
	A          *geometry.Coordinate `json:"a,omitempty"`
	B          *geometry.Coordinate `json:"b,omitempty"`
	Area       int64                `json:"area"`
	Rank       int                  `json:"rank,omitempty"`
	Pairs      int                  `json:"pairs"`
	Candidates int                  `json:"candidates"`
	Strategy   string               `json:"strategy,omitempty"`
	Workers    int                  `json:"workers,omitempty"`
	ElapsedMs  int64                `json:"elapsed_ms"`
	Message    string               `json:"message,omitempty"`
}

// searchResult converts a search outcome. ErrNotFound becomes a result with
// Found unset that still reports how many pairs were checked; any other
// error is returned.
func searchResult(res search.Result, err error, candidates int, start time.Time) (*SearchResult, error) {
	out := &SearchResult{
		Pairs:      res.Pairs,
		Candidates: candidates,
		ElapsedMs:  time.Since(start).Milliseconds(),
	}
	if errors.Is(err, search.ErrNotFound) {
		out.Message = err.Error()
		return out, nil
	}
	if err != nil {
		return nil, err
	}

	a, b := res.A, res.B
	out.Found = true
	out.A = &a
	out.B = &b
	out.Area = res.Area
	out.Rank = res.Rank
	return out, nil
}

type floorLargestAreaArgs struct {
	planArgs
	Candidates []pointArg `json:"candidates"`
}

func (s *Server) handleFloorLargestArea(args json.RawMessage) (interface{}, error) {
	var a floorLargestAreaArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	plan, err := s.plan(a.planArgs)
	if err != nil {
		return nil, err
	}

	points := candidates(a.Candidates, plan)
	start := time.Now()
	res, err := search.LargestArea(points)
	return searchResult(res, err, len(points), start)
}

type floorLargestAreaConstrainedArgs struct {
	planArgs
	Candidates []pointArg `json:"candidates"`
	Strategy   string     `json:"strategy"`
	Workers    int        `json:"workers"`
	TimeoutMs  int        `json:"timeout_ms"`
}

func (s *Server) handleFloorLargestAreaConstrained(args json.RawMessage) (interface{}, error) {
	var a floorLargestAreaConstrainedArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Workers <= 0 {
		a.Workers = s.cfg.Workers
	}
	if a.TimeoutMs < 0 {
		return nil, fmt.Errorf("timeout_ms must not be negative, got %d", a.TimeoutMs)
	}

	plan, err := s.plan(a.planArgs)
	if err != nil {
		return nil, err
	}
	oracle, strategy, err := s.oracle(plan, a.Strategy)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if a.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(a.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	points := candidates(a.Candidates, plan)
	start := time.Now()
	res, err := search.LargestAreaConstrainedContext(ctx, points, oracle, search.Options{Workers: a.Workers})
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("search aborted after %d ms: %w", a.TimeoutMs, err)
	}

	out, err := searchResult(res, err, len(points), start)
	if err != nil {
		return nil, err
	}
	out.Strategy = strategy
	out.Workers = a.Workers

	s.logger.Debug().
		Str("plan", plan.Name).
		Bool("found", out.Found).
		Int64("area", out.Area).
		Int("rank", out.Rank).
		Int64("elapsed_ms", out.ElapsedMs).
		Msg("constrained search")
	return out, nil
}

// === Visualisation Handlers ===

const (
	highlightNone          = "none"
	highlightConstrained   = "constrained"
	highlightUnconstrained = "unconstrained"
)

type floorRenderArgs struct {
	planArgs
	Highlight    string         `json:"highlight"`
	Label        bool           `json:"label"`
	Scale        int            `json:"scale"`
	MaxDimension int            `json:"max_dimension"`
	OutputPath   string         `json:"output_path"`
	Palette      render.Palette `json:"palette"`
}

func (s *Server) handleFloorRender(args json.RawMessage) (interface{}, error) {
	var a floorRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MaxDimension <= 0 {
		a.MaxDimension = s.cfg.RenderMaxDimension
	}
	if a.Scale == 0 {
		a.Scale = 1
	}
	if a.Scale < 1 || a.Scale > render.MaxScale {
		return nil, fmt.Errorf("scale must be between 1 and %d, got %d", render.MaxScale, a.Scale)
	}

	plan, err := s.plan(a.planArgs)
	if err != nil {
		return nil, err
	}

	var highlight *search.Pair
	var res search.Result
	switch a.Highlight {
	case "", highlightNone:
	case highlightUnconstrained:
		res, err = search.LargestArea(plan.Boundary.Vertices())
	case highlightConstrained:
		res, err = search.LargestAreaConstrainedContext(context.Background(), plan.Boundary.Vertices(), plan.Boundary,
			search.Options{Workers: s.cfg.Workers})
	default:
		return nil, fmt.Errorf("unknown highlight %q", a.Highlight)
	}
	switch {
	case err == nil && res.Area > 0:
		highlight = &res.Pair
	case errors.Is(err, search.ErrNotFound):
		// render without a highlight
	case err != nil:
		return nil, err
	}

	out, err := render.Floorplan(plan.Boundary, render.Options{
		MaxDimension: a.MaxDimension,
		Scale:        a.Scale,
		Palette:      a.Palette,
		Label:        a.Label,
		OutputPath:   a.OutputPath,
	}, highlight)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"image":     out,
		"highlight": highlight,
	}, nil
}
