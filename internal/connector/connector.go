// Package connector implements the template connector: it reads the asset
// configuration, dispatches action identifiers to handlers and records
// their outcome as action results.
//
// A Connector serves one invocation. Build it with New, call Initialize
// with the host configuration, then HandleAction once.
package connector

import (
	"context"
	"fmt"

	"template-connector/internal/config"
	"template-connector/internal/logger"
	"template-connector/internal/plugin"
	"template-connector/internal/rest"
	"template-connector/internal/result"
	"template-connector/internal/types"
)

// Connector holds the state of one action invocation.
type Connector struct {
	cfg      types.AssetConfig
	client   *rest.Client
	registry *plugin.Registry
	strict   bool

	results  []*result.ActionResult
	progress []string
}

// Option configures a Connector.
type Option func(*Connector)

// WithStrictActions makes unknown action identifiers fail instead of
// reporting success.
func WithStrictActions(strict bool) Option {
	return func(c *Connector) { c.strict = strict }
}

// New creates a connector with every supported action registered.
func New(opts ...Option) *Connector {
	c := &Connector{
		client:   rest.New(types.AssetConfig{}),
		registry: plugin.NewRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.mustRegister(plugin.ActionDef{
		Name:        ActionTestConnectivity,
		Description: "Validate the asset configuration for connectivity using supplied configuration",
		ReadOnly:    true,
	}, plugin.HandlerFunc(c.handleTestConnectivity))
	// Register further actions here.

	return c
}

func (c *Connector) mustRegister(def plugin.ActionDef, h plugin.Handler) {
	if err := c.registry.Register(def, h); err != nil {
		panic(err)
	}
}

// Initialize reads the asset configuration supplied by the host. It only
// copies values: a missing or malformed setting is logged and surfaces on
// the first REST call, so Initialize always reports success.
func (c *Connector) Initialize(_ context.Context, raw map[string]any) result.Status {
	log := logger.Get()
	log.Debug().Msg("Initializing connector")

	cfg, err := config.Decode(raw)
	if err != nil {
		log.Warn().Err(err).Msg("Asset configuration could not be fully decoded")
	}
	if cfg.Host == "" {
		log.Warn().Str("key", config.KeyHost).Msg("Asset configuration has no base URL")
	}

	c.cfg = cfg
	c.client = rest.New(cfg)
	return result.Success
}

// HandleAction dispatches action to its handler. An identifier with no
// handler reports success without doing anything unless the connector was
// built WithStrictActions.
func (c *Connector) HandleAction(ctx context.Context, action string, param map[string]any) result.Status {
	log := logger.Get()
	log.Debug().Str("action_id", action).Msg("Handling action")

	h, ok := c.registry.Get(action)
	if !ok {
		actionsTotal.WithLabelValues("unknown", c.unknownStatus().String()).Inc()
		if c.strict {
			ar := c.AddActionResult(result.New(param))
			return ar.SetStatus(result.Failure, fmt.Sprintf(ErrUnsupportedActionFmt, action))
		}
		log.Warn().Str("action_id", action).Msg("No handler registered for action; reporting success")
		return result.Success
	}

	status := h.Handle(ctx, param)
	actionsTotal.WithLabelValues(action, status.String()).Inc()
	return status
}

func (c *Connector) unknownStatus() result.Status {
	if c.strict {
		return result.Failure
	}
	return result.Success
}

// AddActionResult registers ar with the invocation and returns it.
func (c *Connector) AddActionResult(ar *result.ActionResult) *result.ActionResult {
	c.results = append(c.results, ar)
	return ar
}

// SaveProgress records a progress message for the host and logs it.
func (c *Connector) SaveProgress(msg string) {
	c.progress = append(c.progress, msg)
	logger.Get().Info().Msg(msg)
}

// Actions returns the metadata of every supported action.
func (c *Connector) Actions() []plugin.ActionDef { return c.registry.Defs() }

// Action returns the metadata of one action.
func (c *Connector) Action(name string) (plugin.ActionDef, bool) { return c.registry.Def(name) }

// ActionResults returns the results added during this invocation.
func (c *Connector) ActionResults() []*result.ActionResult { return c.results }

// Progress returns the progress messages saved during this invocation.
func (c *Connector) Progress() []string { return c.progress }

// Config returns the asset configuration read by Initialize.
func (c *Connector) Config() types.AssetConfig { return c.cfg }
