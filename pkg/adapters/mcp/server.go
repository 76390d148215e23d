package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	rasa "github.com/malhotra1432/rasa-1"
	"github.com/malhotra1432/rasa-1/internal/validation"
	"github.com/malhotra1432/rasa-1/pkg/ports"
)

// Server exposes the composed importer chain as an MCP server, so AI agents
// can inspect a bot's training data as tools and resources.
type Server struct {
	importer  ports.TrainingDataImporter
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server over an importer chain.
func NewServer(importer ports.TrainingDataImporter) *Server {
	s := &Server{
		importer:  importer,
		mcpServer: server.NewMCPServer("rasa-mcp", strings.TrimSpace(rasa.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("get_domain",
		mcp.WithDescription("Get the bot domain: intents, entities, slots, responses, actions, and forms."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		domain, err := s.importer.GetDomain(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to fetch domain: %v", err)), nil
		}
		return jsonResult(domain)
	})

	s.mcpServer.AddTool(mcp.NewTool("get_stories",
		mcp.WithDescription("Get the dialogue stories as a story graph."),
		mcp.WithBoolean("e2e", mcp.Description("Parse end-to-end literal text turns")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts := []ports.StoryOption{}
		if request.GetBool("e2e", false) {
			opts = append(opts, ports.WithE2E())
		}
		stories, err := s.importer.GetStories(ctx, opts...)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to fetch stories: %v", err)), nil
		}
		return jsonResult(stories)
	})

	s.mcpServer.AddTool(mcp.NewTool("get_config",
		mcp.WithDescription("Get the training pipeline configuration document."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		config, err := s.importer.GetConfig(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to fetch config: %v", err)), nil
		}
		return jsonResult(config)
	})

	s.mcpServer.AddTool(mcp.NewTool("get_nlu_data",
		mcp.WithDescription("Get the NLU training examples and responses."),
		mcp.WithString("language", mcp.Description("Language code, defaults to \"en\"")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := s.importer.GetNLUData(ctx, request.GetString("language", ""))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to fetch nlu data: %v", err)), nil
		}
		return jsonResult(data)
	})

	s.mcpServer.AddTool(mcp.NewTool("validate_data",
		mcp.WithDescription("Cross-check domain, stories, and NLU data for consistency problems."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		v, err := validation.FromImporter(ctx, s.importer)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("validation failed: %v", err)), nil
		}
		findings := v.Findings()
		if len(findings) == 0 {
			return mcp.NewToolResultText("Training data is consistent."), nil
		}
		lines := make([]string, 0, len(findings))
		for _, f := range findings {
			lines = append(lines, f.String())
		}
		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("rasa://domain", "Bot Domain",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		domain, err := s.importer.GetDomain(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch domain: %w", err)
		}
		jsonBytes, err := json.Marshal(domain)
		if err != nil {
			return nil, fmt.Errorf("failed to encode domain: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "rasa://domain",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

func jsonResult(payload any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
