package tools

import (
	"context"

	"github.com/HendryAvila/uranai/internal/calendar"
	"github.com/HendryAvila/uranai/internal/zodiac"
	"github.com/mark3labs/mcp-go/mcp"
)

// ZodiacTool handles the fortune_zodiac MCP tool.
type ZodiacTool struct{}

// NewZodiacTool creates a ZodiacTool.
func NewZodiacTool() *ZodiacTool {
	return &ZodiacTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *ZodiacTool) Definition() mcp.Tool {
	return mcp.NewTool("fortune_zodiac",
		mcp.WithDescription("Western zodiac sign for a month and day. The year plays no part."),
		mcp.WithNumber("month", mcp.Required(), mcp.Description("Month, 1-12")),
		mcp.WithNumber("day", mcp.Required(), mcp.Description("Day of month")),
	)
}

// Handle processes the fortune_zodiac tool call.
func (t *ZodiacTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	month, ok1 := intArg(req, "month")
	day, ok2 := intArg(req, "day")
	if !ok1 || !ok2 {
		return mcp.NewToolResultError("'month' and 'day' are required whole numbers"), nil
	}
	// 2000 is a leap year, so 02-29 is accepted.
	if _, err := calendar.New(2000, month, day); err != nil {
		return mcp.NewToolResultError("no such month/day combination"), nil
	}

	threshold, _ := zodiac.Threshold(month)
	return jsonResult(map[string]any{
		"month":     month,
		"day":       day,
		"sign":      zodiac.Of(month, day),
		"threshold": threshold,
	})
}
