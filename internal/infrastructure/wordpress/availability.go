package wordpress

import (
	"context"
	"sync/atomic"

	"AllianceSite/internal/domain"
)

// AvailabilityCell memoizes the backend probe verdict. The zero value is unknown.
// The first completed probe wins; later verdicts are discarded until Reset.
type AvailabilityCell struct {
	state atomic.Int32
}

// NewAvailabilityCell returns a cell in the unknown state.
func NewAvailabilityCell() *AvailabilityCell {
	return &AvailabilityCell{}
}

// Load returns the current state.
func (c *AvailabilityCell) Load() domain.Availability {
	return domain.Availability(c.state.Load())
}

// Reset forgets the verdict so the next check probes again.
func (c *AvailabilityCell) Reset() {
	c.state.Store(int32(domain.AvailabilityUnknown))
}

func (c *AvailabilityCell) resolve(available bool) domain.Availability {
	next := domain.AvailabilityUnavailable
	if available {
		next = domain.AvailabilityAvailable
	}
	c.state.CompareAndSwap(int32(domain.AvailabilityUnknown), int32(next))
	return c.Load()
}

// IsAvailable probes the backend once and memoizes the answer in the client's cell.
func (c *Client) IsAvailable(ctx context.Context) bool {
	if state := c.state.Load(); state != domain.AvailabilityUnknown {
		return state == domain.AvailabilityAvailable
	}
	return c.state.resolve(c.probe(ctx)) == domain.AvailabilityAvailable
}

// Reprobe discards the memoized verdict and probes again.
func (c *Client) Reprobe(ctx context.Context) bool {
	c.state.Reset()
	return c.IsAvailable(ctx)
}

// Availability exposes the memoized state without probing.
func (c *Client) Availability() domain.Availability {
	return c.state.Load()
}

func (c *Client) probe(ctx context.Context) bool {
	if err := c.configErr(); err != nil {
		if c.disabled {
			c.logger.Info("wordpress integration is disabled by configuration")
		} else {
			c.logger.Warn("wordpress api url is not configured")
		}
		return false
	}

	// The verdict outlives the caller, so the caller's cancellation must not decide it.
	probeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.probeTimeout)
	defer cancel()

	if _, err := c.get(probeCtx, c.baseURL+"/posts", probeQuery()); err != nil {
		c.logger.Warn("wordpress availability check failed", "api_url", c.baseURL, "error", err)
		return false
	}

	c.logger.Debug("wordpress api is available", "api_url", c.baseURL)
	return true
}

// unavailableErr names why the backend cannot be used, once IsAvailable said no.
func (c *Client) unavailableErr() error {
	if err := c.configErr(); err != nil {
		return err
	}
	return errProbeFailed
}

func (c *Client) configErr() error {
	switch {
	case c.disabled:
		return ErrDisabled
	case c.baseURL == "":
		return ErrUnconfigured
	default:
		return nil
	}
}
