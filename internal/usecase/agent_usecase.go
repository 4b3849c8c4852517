package usecase

import "context"

// ProcessInput carries the agent's free-text payload.
type ProcessInput struct {
	InputText string `json:"inputText" validate:"required"`
}

// ProcessOutput is the agent's response shape.
type ProcessOutput struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// AgentUsecase defines the placeholder text-processing operation.
type AgentUsecase interface {
	// Process runs the input through the text pipeline and shapes the result.
	Process(ctx context.Context, input *ProcessInput) (*ProcessOutput, error)
}
