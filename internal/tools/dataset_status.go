package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/uranai/internal/animal"
	"github.com/HendryAvila/uranai/internal/dataset"
	"github.com/mark3labs/mcp-go/mcp"
)

// ImportHistory is the part of dataset.Store the status tool reads.
type ImportHistory interface {
	LastImport(ctx context.Context) (dataset.ImportInfo, bool, error)
}

// DatasetStatusTool handles the fortune_dataset_status MCP tool.
type DatasetStatusTool struct {
	backend string
	source  animal.DataSource
	history ImportHistory
}

// NewDatasetStatusTool creates a DatasetStatusTool. history may be nil
// when the backend keeps no import record.
func NewDatasetStatusTool(backend string, source animal.DataSource, history ImportHistory) *DatasetStatusTool {
	return &DatasetStatusTool{backend: backend, source: source, history: history}
}

// Definition returns the MCP tool definition for registration.
func (t *DatasetStatusTool) Definition() mcp.Tool {
	return mcp.NewTool("fortune_dataset_status",
		mcp.WithDescription(
			"Report whether the animal dataset is readable, how many dates it covers and "+
				"how many malformed rows were skipped. When it is not readable every animal "+
				"lookup uses the fallback table.",
		),
	)
}

// Handle processes the fortune_dataset_status tool call.
func (t *DatasetStatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	sb.WriteString("## Animal Dataset\n\n")
	fmt.Fprintf(&sb, "- **Backend**: %s\n", t.backend)

	table, err := t.source.TryRead(ctx)
	if err != nil {
		fmt.Fprintf(&sb, "- **Status**: unavailable, lookups use the fallback table\n")
		fmt.Fprintf(&sb, "- **Reason**: %v\n", err)
	} else {
		fmt.Fprintf(&sb, "- **Status**: ok\n")
		fmt.Fprintf(&sb, "- **Dates**: %d\n", table.Len())
		fmt.Fprintf(&sb, "- **Skipped rows**: %d\n", table.Skipped())
	}

	if t.history != nil {
		info, ok, err := t.history.LastImport(ctx)
		switch {
		case err != nil:
			fmt.Fprintf(&sb, "- **Last import**: error: %v\n", err)
		case !ok:
			sb.WriteString("- **Last import**: never\n")
		default:
			fmt.Fprintf(&sb, "- **Last import**: %s from %s (%d rows, %d skipped)\n",
				info.ImportedAt.Format("2006-01-02 15:04:05Z07:00"), info.Source, info.Rows, info.Skipped)
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}
