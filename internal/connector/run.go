package connector

import (
	"context"

	"github.com/google/uuid"

	"template-connector/internal/logger"
	"template-connector/internal/plugin"
	"template-connector/internal/result"
)

// Run handles one protocol request on a fresh connector.
func Run(ctx context.Context, req plugin.Request, opts ...Option) *plugin.Response {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	log := logger.Get().With().Str("run_id", id).Str("action", req.Action).Logger()

	c := New(opts...)
	resp := &plugin.Response{ID: id, Action: req.Action}

	status := c.Initialize(ctx, req.Config)
	if result.IsSuccess(status) {
		status = c.HandleAction(ctx, req.Action, req.Input)
	}

	resp.Status = status.String()
	resp.Progress = c.Progress()
	resp.Results = c.ActionResults()
	if n := len(resp.Results); n > 0 {
		resp.Message = resp.Results[n-1].Message()
	}
	if result.IsFail(status) {
		resp.Error = resp.Message
	}

	log.Info().Str("status", resp.Status).Msg("Action finished")
	return resp
}
