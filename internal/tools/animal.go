package tools

import (
	"context"

	"github.com/HendryAvila/uranai/internal/animal"
	"github.com/HendryAvila/uranai/internal/calendar"
	"github.com/mark3labs/mcp-go/mcp"
)

// AnimalTool handles the fortune_animal MCP tool.
type AnimalTool struct {
	resolver *animal.Resolver
}

// NewAnimalTool creates an AnimalTool backed by resolver.
func NewAnimalTool(resolver *animal.Resolver) *AnimalTool {
	return &AnimalTool{resolver: resolver}
}

// Definition returns the MCP tool definition for registration.
func (t *AnimalTool) Definition() mcp.Tool {
	return mcp.NewTool("fortune_animal",
		mcp.WithDescription(
			"Animal-fortune character for a date. A dataset hit carries dataset_index (1-60) "+
				"and a color; otherwise the result comes from the 12-animal fallback table and "+
				"carries fallback_index (0-11). The two index spaces are unrelated.",
		),
		mcp.WithNumber("year", mcp.Required(), mcp.Description("Year, e.g. 2008")),
		mcp.WithNumber("month", mcp.Required(), mcp.Description("Month, 1-12")),
		mcp.WithNumber("day", mcp.Required(), mcp.Description("Day of month")),
	)
}

// Handle processes the fortune_animal tool call.
func (t *AnimalTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year, ok1 := intArg(req, "year")
	month, ok2 := intArg(req, "month")
	day, ok3 := intArg(req, "day")
	if !ok1 || !ok2 || !ok3 {
		return mcp.NewToolResultError("'year', 'month' and 'day' are required whole numbers"), nil
	}
	if _, err := calendar.New(year, month, day); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(t.resolver.Resolve(ctx, year, month, day))
}
