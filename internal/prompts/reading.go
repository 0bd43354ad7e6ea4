// Package prompts implements the MCP prompts exposed by the server.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/uranai/internal/calendar"
	"github.com/mark3labs/mcp-go/mcp"
)

// ReadingPrompt handles the fortune-reading MCP prompt.
// It instructs the AI to resolve a birth date and present the result.
type ReadingPrompt struct{}

// NewReadingPrompt creates a ReadingPrompt.
func NewReadingPrompt() *ReadingPrompt {
	return &ReadingPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ReadingPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("fortune-reading",
		mcp.WithPromptDescription(
			"Give a fortune reading for a birth date: zodiac sign, animal character "+
				"and six-star category, with an honest note on where each answer came from.",
		),
		mcp.WithArgument("birth_date",
			mcp.ArgumentDescription("Birth date as YYYY-MM-DD"),
			mcp.RequiredArgument(),
		),
	)
}

// Handle processes the fortune-reading prompt request.
func (p *ReadingPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	raw := strings.TrimSpace(req.Params.Arguments["birth_date"])
	if raw == "" {
		return nil, fmt.Errorf("birth_date is required")
	}
	birth, err := calendar.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("birth_date: %w", err)
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Fortune reading for %s", birth),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Please run `fortune_resolve` with birth_date %q.\n\n"+
						"Then:\n"+
						"1. Present the age, zodiac sign and animal character in a short, friendly reading\n"+
						"2. If the animal source is \"fallback\", say that the full 60-character dataset had no "+
						"entry for this date and the answer comes from the simpler 12-animal table\n"+
						"3. If the six-star category is \"pending\", say it cannot be determined yet instead of guessing\n"+
						"4. Do not invent attributes the tool did not return",
					birth.String(),
				)),
			},
		},
	}, nil
}
