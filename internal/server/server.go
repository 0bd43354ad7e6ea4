// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools, prompts and resources. No fortune logic
// lives here, only wiring.
package server

import (
	"github.com/HendryAvila/uranai/internal/calibration"
	"github.com/HendryAvila/uranai/internal/prompts"
	"github.com/HendryAvila/uranai/internal/resources"
	"github.com/HendryAvila/uranai/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with every tool, prompt and resource
// registered against rt.
func New(rt *Runtime) *server.MCPServer {
	s := server.NewMCPServer(
		"uranai",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	cases := calibration.DefaultCases()

	// --- Tools ---

	resolveTool := tools.NewResolveTool(rt.Fortune)
	s.AddTool(resolveTool.Definition(), resolveTool.Handle)

	zodiacTool := tools.NewZodiacTool()
	s.AddTool(zodiacTool.Definition(), zodiacTool.Handle)

	animalTool := tools.NewAnimalTool(rt.Animals)
	s.AddTool(animalTool.Definition(), animalTool.Handle)

	calibrateTool := tools.NewCalibrateTool(cases)
	s.AddTool(calibrateTool.Definition(), calibrateTool.Handle)

	// A nil *dataset.Store must not become a non-nil interface.
	var history tools.ImportHistory
	if rt.Store != nil {
		history = rt.Store
	}
	statusTool := tools.NewDatasetStatusTool(rt.Config.Dataset.Backend, rt.Source, history)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	// --- Prompts ---

	readingPrompt := prompts.NewReadingPrompt()
	s.AddPrompt(readingPrompt.Definition(), readingPrompt.Handle)

	// --- Resources ---

	resourceHandler := resources.NewHandler(calibration.DefaultCasesYAML())
	s.AddResource(resourceHandler.AnimalsResource(), resourceHandler.HandleAnimals)
	s.AddResource(resourceHandler.StarsResource(), resourceHandler.HandleStars)
	s.AddResource(resourceHandler.CasesResource(), resourceHandler.HandleCases)

	return s
}

// serverInstructions tells the AI how to use the fortune tools.
func serverInstructions() string {
	return `You have access to uranai, a deterministic fortune resolver.

## Tools
- fortune_resolve(birth_date): the full record (age, zodiac, animal, six-star).
  Use this for any "what is my fortune" style question.
- fortune_zodiac(month, day): zodiac sign only.
- fortune_animal(year, month, day): animal character only.
- fortune_calibrate(format): diagnostic report of candidate formulas against
  known answers. It never picks a formula; do not present a match as truth.
- fortune_dataset_status: whether the 60-character dataset is loaded.

## Reading the results
- animal.source is "dataset" or "fallback". A dataset result carries
  dataset_index (1-60) and a color. A fallback result carries
  fallback_index (0-11) from a different, 12-animal table. Never compare or
  convert between the two indexes.
- star.status "pending" means the six-star category is not determined.
  Say so plainly; do not guess a category.
- The zodiac sign depends only on month and day.`
}
