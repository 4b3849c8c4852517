// Package llm provides TextProcessor implementations for the agent service.
package llm

import (
	"context"
	"fmt"

	"portal/internal/domain/service"
)

// simulatedProcessor echoes the input back in a fixed envelope. It stands in
// for a real language-model pipeline until one is integrated.
type simulatedProcessor struct{}

// NewSimulatedProcessor is the constructor for simulatedProcessor.
func NewSimulatedProcessor() service.TextProcessor {
	return &simulatedProcessor{}
}

// Process returns the canned response for the given input.
func (p *simulatedProcessor) Process(ctx context.Context, inputText string) (string, error) {
	return fmt.Sprintf("Processed: %q (simulated)", inputText), nil
}
