package tools

import (
	"context"

	"github.com/HendryAvila/uranai/internal/calibration"
	"github.com/mark3labs/mcp-go/mcp"
)

// CalibrateTool handles the fortune_calibrate MCP tool.
type CalibrateTool struct {
	cases []calibration.Case
}

// NewCalibrateTool creates a CalibrateTool over the given ground truth.
func NewCalibrateTool(cases []calibration.Case) *CalibrateTool {
	return &CalibrateTool{cases: cases}
}

// Definition returns the MCP tool definition for registration.
func (t *CalibrateTool) Definition() mcp.Tool {
	return mcp.NewTool("fortune_calibrate",
		mcp.WithDescription(
			"Run the formula calibration search: every candidate animal and six-star formula "+
				"is evaluated against the known ground-truth dates and the matched and failed "+
				"dates are listed per candidate. The search never picks a winner.",
		),
		mcp.WithString("format",
			mcp.Description("Output format: markdown (default), ascii or json"),
		),
	)
}

// Handle processes the fortune_calibrate tool call.
func (t *CalibrateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, ok := formatArg(req, "markdown", "ascii", "json")
	if !ok {
		return mcp.NewToolResultError("'format' must be markdown, ascii or json"), nil
	}

	report := calibration.Search(calibration.Catalog(), t.cases)
	switch format {
	case "json":
		return jsonResult(report)
	case "ascii":
		return mcp.NewToolResultText(report.Render(calibration.ASCII)), nil
	default:
		return mcp.NewToolResultText(report.Render(calibration.Markdown)), nil
	}
}
