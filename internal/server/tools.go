package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// planProperties are the inputs every tool accepts to identify a floor plan.
func planProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to a floor plan file with one \"x,y\" corner per line, in path order",
		},
		"data": map[string]interface{}{
			"type":        "string",
			"description": "Floor plan given inline, same format as the file. Used when path is empty",
		},
	}
}

// withPlan merges extra properties with the plan inputs.
func withPlan(extra map[string]interface{}) map[string]interface{} {
	props := planProperties()
	for k, v := range extra {
		props[k] = v
	}
	return props
}

func pointSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x": map[string]interface{}{"type": "integer"},
			"y": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x", "y"},
	}
}

var strategyProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"parity", "flood"},
	"description": "Containment classifier: parity ray casting (default) or exterior flood fill",
	"default":     "parity",
}

var candidatesProperty = map[string]interface{}{
	"type":        "array",
	"items":       pointSchema("Candidate corner"),
	"description": "Candidate corners. Defaults to the plan's own corner points",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Floor Plan Information
		{
			Name:        "floor_load",
			Description: "Load a floor plan and return its corner count, outline and wall cell counts, and bounding box. Plans loaded by path are cached for later calls.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": planProperties(),
			},
		},

		// Containment
		{
			Name:        "floor_contains",
			Description: "Report whether a grid cell is inside the floor plan. Cells on the boundary count as inside.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withPlan(map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Cell X coordinate",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Cell Y coordinate",
					},
					"strategy": strategyProperty,
				}),
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "floor_contains_multi",
			Description: "Classify several grid cells at once as inside or outside the floor plan.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withPlan(map[string]interface{}{
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Cells to classify, with optional labels",
					},
					"strategy": strategyProperty,
				}),
				"required": []string{"points"},
			},
		},
		{
			Name:        "floor_cross_check",
			Description: "Classify every cell of the plan's bounding box (grown by one) with both the parity and flood fill classifiers and report any disagreement.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": planProperties(),
			},
		},

		// Rectangle Search
		{
			Name:        "floor_largest_area",
			Description: "Find the largest axis-aligned rectangle whose opposite corners are two distinct candidates, ignoring the boundary. Area counts grid cells inclusively.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withPlan(map[string]interface{}{
					"candidates": candidatesProperty,
				}),
			},
		},
		{
			Name:        "floor_largest_area_constrained",
			Description: "Find the largest axis-aligned rectangle whose opposite corners are two distinct candidates and whose whole perimeter lies inside the floor plan.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withPlan(map[string]interface{}{
					"candidates": candidatesProperty,
					"strategy":   strategyProperty,
					"workers": map[string]interface{}{
						"type":        "integer",
						"description": "Goroutines used to check pairs. Defaults to the server setting",
					},
					"timeout_ms": map[string]interface{}{
						"type":        "integer",
						"description": "Abort the search after this many milliseconds. 0 means no limit",
					},
				}),
			},
		},

		// Visualisation
		{
			Name:        "floor_render",
			Description: "Draw the floor plan as a PNG (base64). Optionally highlight the largest rectangle found by either search.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withPlan(map[string]interface{}{
					"highlight": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"none", "constrained", "unconstrained"},
						"description": "Which search result to outline. Default none",
						"default":     "none",
					},
					"label": map[string]interface{}{
						"type":        "boolean",
						"description": "Write the highlighted rectangle's area on the image",
					},
					"scale": map[string]interface{}{
						"type":        "integer",
						"description": "Integer enlargement factor (1-16). Default 1",
						"default":     1,
					},
					"max_dimension": map[string]interface{}{
						"type":        "integer",
						"description": "Longest side in pixels before scaling; larger plans are downsampled",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Also save the PNG to this file",
					},
					"palette": map[string]interface{}{
						"type":        "object",
						"description": "Hex colours (#RRGGBB or #RRGGBBAA) for background, interior, outline, wall and highlight",
						"properties": map[string]interface{}{
							"background": map[string]interface{}{"type": "string"},
							"interior":   map[string]interface{}{"type": "string"},
							"outline":    map[string]interface{}{"type": "string"},
							"wall":       map[string]interface{}{"type": "string"},
							"highlight":  map[string]interface{}{"type": "string"},
						},
					},
				}),
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
