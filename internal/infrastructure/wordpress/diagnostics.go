package wordpress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"AllianceSite/internal/domain"
)

// TestConnection probes the API once, bypassing the memoized verdict, and
// returns a report plus the HTTP status a diagnostic endpoint should answer with.
func (c *Client) TestConnection(ctx context.Context) (domain.ConnectionReport, int) {
	if c.disabled {
		return domain.ConnectionReport{
			Status:   "error",
			Error:    "WordPress integration is disabled by configuration",
			Disabled: true,
		}, http.StatusOK
	}

	report := domain.ConnectionReport{
		Status:       "error",
		RawURL:       c.rawURL,
		FormattedURL: c.baseURL,
	}

	if c.baseURL == "" {
		report.Error = "WordPress API URL is not configured"
		return report, http.StatusInternalServerError
	}

	c.logger.Info("testing wordpress api connection", "api_url", c.baseURL)

	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	body, err := c.get(reqCtx, c.baseURL+"/posts", probeQuery())
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			report.Error = fmt.Sprintf("WordPress API returned status: %d", statusErr.Code)
			report.ResponseStatus = statusErr.Code
			report.ResponseStatusText = http.StatusText(statusErr.Code)
			return report, statusErr.Code
		}
		report.Error = err.Error()
		return report, http.StatusInternalServerError
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		report.Error = fmt.Errorf("%w: %w", ErrDecode, err).Error()
		return report, http.StatusInternalServerError
	}

	if list, ok := data.([]any); ok {
		data = map[string]int{"count": len(list)}
	}

	report.Status = "success"
	report.Message = "WordPress API connection successful"
	report.Data = data
	return report, http.StatusOK
}
