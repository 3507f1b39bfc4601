package plugin

import (
	"context"

	"template-connector/internal/result"
	"template-connector/internal/types"
)

// Handler runs a single connector action.
type Handler interface {
	// Handle executes the action with the given parameters and reports its
	// overall status. Details go to the action results the handler creates.
	Handle(ctx context.Context, param map[string]any) result.Status
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(ctx context.Context, param map[string]any) result.Status

func (f HandlerFunc) Handle(ctx context.Context, param map[string]any) result.Status {
	return f(ctx, param)
}

// ActionDef describes an action a connector supports.
type ActionDef struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	ReadOnly    bool                      `json:"read_only"`
	Input       map[string]types.FieldDef `json:"input,omitempty"`
	Output      map[string]types.FieldDef `json:"output,omitempty"`
}
