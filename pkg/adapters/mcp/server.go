package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/cadenza"
	"github.com/aretw0/cadenza/pkg/domain"
)

// ProgressionResponse provides a unified structure across adapters.
type ProgressionResponse struct {
	Steps  []domain.Step  `json:"steps" jsonschema_description:"Visited vertices with tritone flags"`
	Chords []domain.Chord `json:"chords" jsonschema_description:"Rendered chords in progression order"`
}

// SubstitutionResponse carries one rule-table application.
type SubstitutionResponse struct {
	Input  string `json:"input" jsonschema_description:"The quality that was submitted"`
	Result string `json:"result" jsonschema_description:"The substituted quality"`
}

// Server exposes the Cadenza engine as an MCP Server.
type Server struct {
	base      domain.Config
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. base is the configuration
// used when a tool call carries no overrides.
func NewServer(base domain.Config) *Server {
	s := &Server{
		base:      base,
		mcpServer: server.NewMCPServer("cadenza-mcp", strings.TrimSpace(cadenza.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: generate_progression
	generateTool := mcp.NewTool("generate_progression",
		mcp.WithDescription("Generate a chord progression by a random walk over the transition net. All parameters are optional overrides of the server configuration."),
		mcp.WithNumber("max", mcp.Description("Progression length")),
		mcp.WithString("scale_root", mcp.Description("Scale root note, e.g. C, F#, Bb")),
		mcp.WithString("scale_name", mcp.Description("Scale name, e.g. major, minor, chromatic")),
		mcp.WithNumber("octave", mcp.Description("Base octave for chord roots")),
		mcp.WithString("tonic_policy", mcp.Description("First-position policy: fixed, neighbor or random")),
		mcp.WithString("resolve_policy", mcp.Description("Last-position policy: fixed, neighbor or random")),
		mcp.WithBoolean("substitute", mcp.Description("Enable jazz substitutions")),
		mcp.WithBoolean("flat", mcp.Description("Re-spell sharp pitches with flats")),
		mcp.WithNumber("seed", mcp.Description("Random seed for reproducible output")),
		mcp.WithOutputSchema[ProgressionResponse](),
	)
	s.mcpServer.AddTool(generateTool, mcp.NewStructuredToolHandler(s.handleGenerate))

	// TOOL: substitute_quality
	substituteTool := mcp.NewTool("substitute_quality",
		mcp.WithDescription("Apply the jazz substitution rule table to a single chord quality."),
		mcp.WithString("quality", mcp.Required(), mcp.Description("Chord quality suffix, e.g. \"\", m, 7, M7")),
		mcp.WithNumber("seed", mcp.Description("Random seed for reproducible tie-breaks")),
		mcp.WithOutputSchema[SubstitutionResponse](),
	)
	s.mcpServer.AddTool(substituteTool, mcp.NewStructuredToolHandler(s.handleSubstitute))
}

// Handler methods for structured tools

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ProgressionResponse, error) {
	cfg := s.base
	cfg.Net = s.base.Net.Clone()
	cfg.ChordQualities = append([]string(nil), s.base.ChordQualities...)

	if v, ok := args["max"].(float64); ok {
		cfg.Max = int(v)
	}
	if v, ok := args["scale_root"].(string); ok && v != "" {
		cfg.ScaleRoot = v
	}
	if v, ok := args["scale_name"].(string); ok && v != "" {
		cfg.ScaleName = v
	}
	if v, ok := args["octave"].(float64); ok {
		cfg.Octave = int(v)
	}
	if v, ok := args["tonic_policy"].(string); ok && v != "" {
		cfg.TonicPolicy = domain.Policy(v)
	}
	if v, ok := args["resolve_policy"].(string); ok && v != "" {
		cfg.ResolvePolicy = domain.Policy(v)
	}
	if v, ok := args["substitute"].(bool); ok {
		cfg.Substitute = v
	}
	if v, ok := args["flat"].(bool); ok {
		cfg.Flat = v
	}

	opts := []cadenza.Option{cadenza.WithConfig(cfg)}
	if v, ok := args["seed"].(float64); ok {
		opts = append(opts, cadenza.WithSeed(int64(v)))
	}

	eng, err := cadenza.New(opts...)
	if err != nil {
		return ProgressionResponse{}, fmt.Errorf("engine init failed: %w", err)
	}

	prog, err := eng.Generate(ctx)
	if err != nil {
		return ProgressionResponse{}, fmt.Errorf("generate failed: %w", err)
	}

	return ProgressionResponse{
		Steps:  prog.Steps,
		Chords: prog.Chords,
	}, nil
}

func (s *Server) handleSubstitute(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SubstitutionResponse, error) {
	quality, _ := args["quality"].(string)

	var r *rand.Rand
	if v, ok := args["seed"].(float64); ok {
		r = rand.New(rand.NewSource(int64(v)))
	} else {
		r = rand.New(rand.NewSource(rand.Int63()))
	}

	return SubstitutionResponse{
		Input:  quality,
		Result: cadenza.Substitute(r, quality),
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: cadenza://net
	s.mcpServer.AddResource(mcp.NewResource("cadenza://net", "Transition Net Definition",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(map[string]any{
			"net":             s.base.Net,
			"chord_qualities": s.base.ChordQualities,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to encode net: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "cadenza://net",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
