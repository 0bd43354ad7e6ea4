package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/uranai/internal/fortune"
	"github.com/mark3labs/mcp-go/mcp"
)

// ResolveTool handles the fortune_resolve MCP tool.
type ResolveTool struct {
	agg *fortune.Aggregator
}

// NewResolveTool creates a ResolveTool backed by agg.
func NewResolveTool(agg *fortune.Aggregator) *ResolveTool {
	return &ResolveTool{agg: agg}
}

// Definition returns the MCP tool definition for registration.
func (t *ResolveTool) Definition() mcp.Tool {
	return mcp.NewTool("fortune_resolve",
		mcp.WithDescription(
			"Resolve the full fortune for a birth date: age as of today, Western zodiac sign, "+
				"animal-fortune character and six-star category. The animal comes from the "+
				"dataset when the date is listed there, otherwise from the 12-animal fallback "+
				"table; the source field says which. The six-star category is reported as "+
				"pending until a formula has been confirmed.",
		),
		mcp.WithString("birth_date",
			mcp.Required(),
			mcp.Description("Birth date as YYYY-MM-DD (also accepts / or . separators)"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: json (default) or text"),
		),
	)
}

// Handle processes the fortune_resolve tool call.
func (t *ResolveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := strings.TrimSpace(req.GetString("birth_date", ""))
	if raw == "" {
		return mcp.NewToolResultError("'birth_date' is required"), nil
	}
	format, ok := formatArg(req, "json", "text")
	if !ok {
		return mcp.NewToolResultError("'format' must be json or text"), nil
	}

	rec, err := t.agg.ResolveString(ctx, raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid birth date %q: use YYYY-MM-DD", raw)), nil
	}

	if format == "text" {
		return mcp.NewToolResultText(strings.Join(rec.Lines(), "\n")), nil
	}
	return jsonResult(rec)
}
