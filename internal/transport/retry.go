package transport

import (
	"context"
	"time"

	"github.com/agentstation/trophycase/pkg/constants"
	"github.com/agentstation/trophycase/pkg/errors"
	"github.com/agentstation/trophycase/pkg/logging"
)

// GetWithRetry performs a GET with bounded exponential backoff. Only the
// remote schema fetch retries; every other operation in the system tries
// once. Context cancellation aborts between attempts.
func (c *Client) GetWithRetry(ctx context.Context, url string) ([]byte, error) {
	backoff := constants.RetryBackoff

	var lastErr error
	for attempt := 1; attempt <= constants.MaxRetries; attempt++ {
		body, err := c.Get(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		// 404s are definitive; backing off won't conjure a schema.
		if errors.IsNotFound(err) {
			return nil, err
		}

		if attempt == constants.MaxRetries {
			break
		}

		logging.FromContext(ctx).Debug().
			Err(err).
			Str("url", url).
			Int("attempt", attempt).
			Dur("backoff", backoff).
			Msg("retrying remote fetch")

		select {
		case <-ctx.Done():
			return nil, errors.ErrCanceled
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > constants.MaxRetryBackoff {
			backoff = constants.MaxRetryBackoff
		}
	}

	return nil, lastErr
}
