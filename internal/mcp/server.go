package mcp

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Aman-CERP/amankeys/internal/config"
	amerrors "github.com/Aman-CERP/amankeys/internal/errors"
	"github.com/Aman-CERP/amankeys/pkg/indexator"
	"github.com/Aman-CERP/amankeys/pkg/version"
)

// ServerName is reported to MCP clients.
const ServerName = "amankeys"

// Server is the MCP server for amankeys. It exposes keyword extraction to
// AI clients over stdio.
type Server struct {
	mcp    *mcp.Server
	idx    *indexator.Indexator
	config *config.Config
	logger *slog.Logger
}

// ToolInfo contains information about a registered tool.
type ToolInfo struct {
	Name        string
	Description string
}

// tools lists the registered tools with their descriptions.
var tools = []ToolInfo{
	{
		Name:        ToolExtractKeywords,
		Description: "Extract keywords and key phrases from a text. Returns single words and multi-word noun phrases scored by frequency and specificity. Use it to summarize what a document is about or to build search terms.",
	},
	{
		Name:        ToolTokenize,
		Description: "Tokenize a text and show the part-of-speech tag, lemma and stem of every token. Use it to understand why a term was or was not extracted.",
	},
}

// NewServer creates a new MCP server around idx. A nil cfg uses defaults.
func NewServer(idx *indexator.Indexator, cfg *config.Config) (*Server, error) {
	if idx == nil {
		return nil, errors.New("indexator is required")
	}
	if cfg == nil {
		cfg = config.NewConfig()
	}

	s := &Server{
		idx:    idx,
		config: cfg,
		logger: slog.Default(),
	}

	s.mcp = mcp.NewServer(
		&mcp.Implementation{
			Name:    ServerName,
			Version: version.Get().Version,
		},
		nil, // capabilities are inferred from registered tools/resources
	)

	s.registerTools()
	s.registerResources()

	return s, nil
}

// SetLogger replaces the server logger.
func (s *Server) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// MCPServer returns the underlying MCP server instance.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

// Info returns the server name and version.
func (s *Server) Info() (name, ver string) {
	return ServerName, version.Get().Version
}

// ListTools returns all registered tools.
func (s *Server) ListTools() []ToolInfo {
	out := make([]ToolInfo, len(tools))
	copy(out, tools)
	return out
}

// CallTool invokes a tool by name with JSON-style arguments.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) (any, error) {
	switch name {
	case ToolExtractKeywords:
		input := ExtractKeywordsInput{}
		input.Text, _ = args["text"].(string)
		if l, ok := args["limit"].(float64); ok {
			input.Limit = int(l)
		}
		if v, ok := args["sort"].(bool); ok {
			input.Sort = &v
		}
		if v, ok := args["truncate"].(bool); ok {
			input.Truncate = &v
		}
		input.Stages, _ = args["stages"].(bool)
		return s.extractKeywords(ctx, input)
	case ToolTokenize:
		text, _ := args["text"].(string)
		return s.tokenize(ctx, TokenizeInput{Text: text})
	default:
		return nil, NewMethodNotFoundError(name)
	}
}

// checkText validates tool text against the configured size limit.
func (s *Server) checkText(text string) error {
	if text == "" {
		return NewInvalidParamsError("text parameter is required and must be a non-empty string")
	}
	if limit := s.config.Performance.MaxInputBytes; limit > 0 && int64(len(text)) > limit {
		return MapError(amerrors.New(amerrors.ErrCodeInputTooLarge,
			fmt.Sprintf("text is %d bytes, limit is %d", len(text), limit), ErrInputTooLarge).
			WithSuggestion("Split the document or raise performance.max_input_bytes."))
	}
	return nil
}

// extractKeywords runs the pipeline for the extract_keywords tool.
func (s *Server) extractKeywords(ctx context.Context, input ExtractKeywordsInput) (*ExtractKeywordsOutput, error) {
	if err := s.checkText(input.Text); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, MapError(err)
	}

	start := time.Now()
	requestID := generateRequestID()

	opts := s.config.IndexOptions()
	if input.Sort != nil {
		opts.Sort = *input.Sort
	}
	if input.Truncate != nil {
		opts.Truncate = *input.Truncate
	}
	limit := clampLimit(input.Limit, defaultKeywordLimit, 1, maxKeywordLimit)

	s.logger.Info("extract_keywords started",
		slog.String("request_id", requestID),
		slog.Int("bytes", len(input.Text)),
		slog.Int("limit", limit))

	doc, err := s.index(input.Text, opts)
	if err != nil {
		return nil, err
	}
	th := s.idx.Filter().Configure(len(doc.Tokens))

	out := &ExtractKeywordsOutput{
		Keywords: doc.Top(limit),
		Statistics: StatisticsOutput{
			Tokens:             len(doc.Tokens),
			Candidates:         len(doc.Extraction.Keys),
			MinOccur:           th.MinOccur,
			MaxFrequency:       doc.Statistics.Frequencies.Max,
			TotalFrequency:     doc.Statistics.Frequencies.Total,
			AverageSpecificity: doc.Statistics.Specificities.Avg,
		},
	}
	if input.Stages {
		out.Terms = toTermOutputs(doc.Terms)
	}

	s.logger.Info("extract_keywords completed",
		slog.String("request_id", requestID),
		slog.Duration("duration", time.Since(start)),
		slog.Int("keyword_count", len(out.Keywords)))

	return out, nil
}

// tokenize runs the pipeline for the tokenize tool.
func (s *Server) tokenize(ctx context.Context, input TokenizeInput) (*TokenizeOutput, error) {
	if err := s.checkText(input.Text); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, MapError(err)
	}

	doc, err := s.index(input.Text, indexator.Options{})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("tokenize completed", slog.Int("tokens", len(doc.Tokens)))

	return &TokenizeOutput{
		Tokens: doc.Tokens,
		Terms:  toTermOutputs(doc.Terms),
	}, nil
}

// index runs the pipeline, turning a panic from a misbehaving collaborator
// into an error so one request cannot take the server down.
func (s *Server) index(text string, opts indexator.Options) (doc *indexator.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			ae := amerrors.New(amerrors.ErrCodeIndexFailed, fmt.Sprintf("indexing failed: %v", r), nil)
			s.logger.Error("indexing panicked", slog.Any("error", ae))
			doc, err = nil, MapError(ae)
		}
	}()
	return s.idx.Index(text, opts), nil
}

// registerTools registers all tools with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        tools[0].Name,
		Description: tools[0].Description,
	}, s.mcpExtractKeywordsHandler)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        tools[1].Name,
		Description: tools[1].Description,
	}, s.mcpTokenizeHandler)

	s.logger.Debug("MCP tools registered", slog.Int("count", len(tools)))
}

// mcpExtractKeywordsHandler is the MCP SDK handler for extract_keywords.
func (s *Server) mcpExtractKeywordsHandler(ctx context.Context, _ *mcp.CallToolRequest, input ExtractKeywordsInput) (
	*mcp.CallToolResult,
	ExtractKeywordsOutput,
	error,
) {
	out, err := s.extractKeywords(ctx, input)
	if err != nil {
		s.logger.Warn("extract_keywords failed", slog.String("error", err.Error()))
		return nil, ExtractKeywordsOutput{}, err
	}
	return textResult(FormatKeywords(out)), *out, nil
}

// mcpTokenizeHandler is the MCP SDK handler for tokenize.
func (s *Server) mcpTokenizeHandler(ctx context.Context, _ *mcp.CallToolRequest, input TokenizeInput) (
	*mcp.CallToolResult,
	TokenizeOutput,
	error,
) {
	out, err := s.tokenize(ctx, input)
	if err != nil {
		s.logger.Warn("tokenize failed", slog.String("error", err.Error()))
		return nil, TokenizeOutput{}, err
	}
	return textResult(FormatTokens(out)), *out, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// Serve starts the server with the specified transport.
func (s *Server) Serve(ctx context.Context, transport string) error {
	s.logger.Info("Starting MCP server", slog.String("transport", transport))

	switch transport {
	case "stdio", "":
		err := s.mcp.Run(ctx, &mcp.StdioTransport{})
		if err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("MCP server stopped with error",
				slog.String("error", err.Error()))
		} else {
			s.logger.Info("MCP server stopped gracefully")
		}
		return err
	default:
		return fmt.Errorf("unknown transport: %s (supported: stdio)", transport)
	}
}

// generateRequestID creates a short unique request ID for log correlation.
func generateRequestID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
