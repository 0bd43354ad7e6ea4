// Package resources implements the read-only MCP resources: the label
// tables and the calibration ground truth.
//
// Resources use URI-based addressing (uranai://...) following MCP
// conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HendryAvila/uranai/internal/animal"
	"github.com/HendryAvila/uranai/internal/star"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	AnimalsURI = "uranai://labels/animals"
	StarsURI   = "uranai://labels/stars"
	CasesURI   = "uranai://calibration/cases"
)

// Handler serves the static resources. casesYAML is the ground-truth file
// the calibration tool runs against.
type Handler struct {
	casesYAML []byte
}

// NewHandler creates a resource Handler.
func NewHandler(casesYAML []byte) *Handler {
	return &Handler{casesYAML: casesYAML}
}

// AnimalsResource returns the MCP resource definition for the 60-character
// table.
func (h *Handler) AnimalsResource() mcp.Resource {
	return mcp.NewResource(
		AnimalsURI,
		"Animal Characters",
		mcp.WithResourceDescription("The 60 animal-fortune characters by dataset index (1-60) and the 12-animal fallback table (0-11)"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleAnimals returns both animal tables as JSON.
func (h *Handler) HandleAnimals(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	fallback := make([]string, 12)
	for i := range fallback {
		fallback[i] = animal.FallbackAnimal(animal.FallbackIndex(i))
	}
	return jsonContents(req.Params.URI, map[string]any{
		"characters": animal.Characters(),
		"fallback":   fallback,
	})
}

// StarsResource returns the MCP resource definition for the six-star labels.
func (h *Handler) StarsResource() mcp.Resource {
	return mcp.NewResource(
		StarsURI,
		"Six-Star Categories",
		mcp.WithResourceDescription("The 12 six-star category labels in index order (0-11)"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleStars returns the star labels as JSON.
func (h *Handler) HandleStars(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(req.Params.URI, star.Labels())
}

// CasesResource returns the MCP resource definition for the ground truth.
func (h *Handler) CasesResource() mcp.Resource {
	return mcp.NewResource(
		CasesURI,
		"Calibration Ground Truth",
		mcp.WithResourceDescription("Dates with known animal and six-star answers, used by fortune_calibrate"),
		mcp.WithMIMEType("application/yaml"),
	)
}

// HandleCases returns the ground-truth YAML verbatim.
func (h *Handler) HandleCases(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/yaml",
			Text:     string(h.casesYAML),
		},
	}, nil
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
