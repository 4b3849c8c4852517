package service

import "context"

// TextProcessor abstracts the language-model pipeline behind the agent
// service. The only current implementation is simulated; the interface exists
// so a real provider can be wired in without touching the delivery layer.
type TextProcessor interface {
	// Process runs the pipeline over the input and returns the produced text.
	Process(ctx context.Context, inputText string) (string, error)
}
