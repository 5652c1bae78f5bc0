package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"gopkg.in/yaml.v3"
)

// ConfigResourceURI names the effective configuration resource.
const ConfigResourceURI = "amankeys://config"

// ResourceInfo contains information about a resource.
type ResourceInfo struct {
	URI      string
	Name     string
	MIMEType string
}

// ResourceContent contains the content of a resource.
type ResourceContent struct {
	URI      string
	Content  string
	MIMEType string
}

// registerResources registers the effective configuration as a resource so
// clients can see which thresholds produced a result.
func (s *Server) registerResources() {
	s.mcp.AddResource(
		&mcp.Resource{
			Name:        "config",
			URI:         ConfigResourceURI,
			Description: "Effective amankeys configuration (filter thresholds, sanitizer bounds, scoring)",
			MIMEType:    "application/yaml",
		},
		func(ctx context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
			rc, err := s.ReadResource(ctx, ConfigResourceURI)
			if err != nil {
				return nil, err
			}
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{{URI: rc.URI, MIMEType: rc.MIMEType, Text: rc.Content}},
			}, nil
		},
	)
}

// ListResources returns the available resources.
func (s *Server) ListResources(_ context.Context) []ResourceInfo {
	return []ResourceInfo{{URI: ConfigResourceURI, Name: "config", MIMEType: "application/yaml"}}
}

// ReadResource returns the content of the resource at uri.
func (s *Server) ReadResource(_ context.Context, uri string) (*ResourceContent, error) {
	if uri != ConfigResourceURI {
		return nil, NewResourceNotFoundError(uri)
	}
	data, err := yaml.Marshal(s.config)
	if err != nil {
		return nil, MapError(err)
	}
	return &ResourceContent{URI: uri, Content: string(data), MIMEType: "application/yaml"}, nil
}
