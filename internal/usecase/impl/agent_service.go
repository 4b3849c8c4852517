package impl

import (
	"context"
	"log/slog"

	deliverycontext "portal/internal/delivery/context"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const processStatusSuccess = "success"

// agentService implements the AgentUsecase interface.
type agentService struct {
	processor service.TextProcessor
	logger    *slog.Logger
}

// AgentServiceParams holds dependencies for AgentService, injected by Fx.
type AgentServiceParams struct {
	fx.In

	Processor service.TextProcessor
	Logger    *slog.Logger
}

// NewAgentService is the constructor for agentService.
func NewAgentService(params AgentServiceParams) usecase.AgentUsecase {
	return &agentService{
		processor: params.Processor,
		logger:    params.Logger,
	}
}

func (srv *agentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Process runs the input through the text pipeline and shapes the response.
func (srv *agentService) Process(ctx context.Context, input *usecase.ProcessInput) (*usecase.ProcessOutput, error) {
	if input == nil || input.InputText == "" {
		return nil, domainerrors.ErrMissingInputText.WrapMessage("process rejected")
	}

	srv.log(ctx).Debug("Processing input", slog.Int("length", len(input.InputText)))

	message, err := srv.processor.Process(ctx, input.InputText)
	if err != nil {
		srv.log(ctx).Error("Failed to process input", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to process input text")
	}

	return &usecase.ProcessOutput{
		Status:  processStatusSuccess,
		Message: message,
	}, nil
}
