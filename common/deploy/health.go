package deploy

import (
	"context"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rotisserie/eris"

	"github.com/pixelfort/pixelfort-cli/common/logger"
)

const (
	defaultReadyTimeout  = 60 * time.Second
	defaultHealthTimeout = 15 * time.Second
	pollInitialInterval  = 500 * time.Millisecond
	pollMaxInterval      = 5 * time.Second
)

var errNotRunning = eris.New("service not running yet")

func newPollBackoff(timeout time.Duration) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = pollInitialInterval
	b.MaxInterval = pollMaxInterval
	b.MaxElapsedTime = timeout
	return b
}

// waitForService polls the compose status listing until the service reports
// running, backing off exponentially up to an explicit deadline.
func waitForService(ctx context.Context, c Compose, service string, timeout time.Duration) error {
	return backoff.Retry(func() error {
		running, err := c.ServiceRunning(service)
		if err != nil {
			logger.Debugf("compose ps failed while waiting: %v", err)
			return err
		}
		if !running {
			return errNotRunning
		}
		return nil
	}, backoff.WithContext(newPollBackoff(timeout), ctx))
}

// probeHealth polls the health endpoint until it answers with a success
// status, up to the given deadline.
func probeHealth(ctx context.Context, httpClient *http.Client, url string, timeout time.Duration) error {
	return backoff.Retry(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(eris.Wrap(err, "failed to create health request"))
		}
		resp, err := httpClient.Do(req)
		if err != nil {
			return eris.Wrap(err, "health request failed")
		}
		defer resp.Body.Close()

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return eris.Errorf("health endpoint returned %s", resp.Status)
		}
		return nil
	}, backoff.WithContext(newPollBackoff(timeout), ctx))
}
