package ephemeris

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	perr "natalchart/internal/platform/errors"
)

// NatalChart computes a full natal chart for the given birth data
func (c *Client) NatalChart(ctx context.Context, birth BirthData) (Chart, error) {
	body, err := json.Marshal(birth)
	if err != nil {
		return Chart{}, perr.Wrapf(err, perr.ErrorCodeJSON, "ephemeris marshal birth data")
	}

	resp, err := c.do(ctx, http.MethodPost, "/chart", body)
	if err != nil {
		return Chart{}, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", "/chart").Msg("ephemeris close body failed")
		}
	}()

	var out Chart
	lim := io.LimitReader(resp.Body, 1<<20)
	b, err := io.ReadAll(lim)
	if err != nil {
		return Chart{}, perr.Wrapf(err, perr.ErrorCodeUpstream, "ephemeris read body")
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return Chart{}, perr.Wrapf(err, perr.ErrorCodeUpstream, "ephemeris decode chart")
	}
	return out, nil
}

// Healthy probes the provider health endpoint
func (c *Client) Healthy(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	return drainAndClose(resp.Body)
}
