package connector

import (
	"context"

	"template-connector/internal/rest"
	"template-connector/internal/result"
)

func (c *Connector) handleTestConnectivity(ctx context.Context, param map[string]any) result.Status {
	ar := c.AddActionResult(result.New(param))
	c.SaveProgress(ProgressConnecting)

	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	status, _ := c.client.Call(ctx, ConnectivityEndpoint, ar, rest.Request{Headers: headers})
	if result.IsFail(status) {
		c.SaveProgress(ErrConnectivityTest)
		return ar.Status()
	}

	c.SaveProgress(SuccConnectivityTest)
	return ar.SetStatus(result.Success, "")
}
