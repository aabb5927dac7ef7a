package check

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/linkcheck"
)

// validateURL checks a reference classified as a URL and records the
// outcome on item. It only writes to item, so it may run concurrently with
// the traversal and with other probes.
func (c *Checker) validateURL(ctx context.Context, logger *slog.Logger, item *workItem) {
	raw := string(item.ref)

	u, err := url.Parse(raw)
	if err != nil {
		logger.Info("bad URL", "url", raw, "err", err)
		record(item, linkcheck.ReasonMalformedURL, c.Policy.FailOnBadURLs)
		return
	}

	// Matches https as well.
	if !strings.HasPrefix(u.Scheme, "http") {
		logger.Warn("only http* supported; not handling URL", "url", raw)
		item.state = stateSkipped
		return
	}

	// 127.0.0.1 and other loopback addresses are not treated as localhost.
	if u.Hostname() == "localhost" {
		logger.Warn("URL for localhost indicates suspicious environment dependency", "url", raw)
		record(item, linkcheck.ReasonLocalhostDependency, c.Policy.FailOnLocalhost)
		return
	}

	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			logger.Info("problem with URL", "url", raw, "err", err)
			record(item, linkcheck.ReasonUnreachable, c.Policy.FailOnBadURLs)
			return
		}
	}

	status, err := c.Prober.Probe(ctx, raw)
	switch {
	case err != nil && isConnectError(err):
		logger.Info("cannot connect to URL", "url", raw, "err", err)
	case err != nil:
		logger.Info("problem with URL", "url", raw, "err", err)
	case status != http.StatusOK:
		logger.Info("got response code", "status", status, "url", raw)
	default:
		item.state = stateGood
		return
	}
	record(item, linkcheck.ReasonUnreachable, c.Policy.FailOnBadURLs)
}

// record marks item bad for reason when fail is set. Otherwise the failure
// has already been logged and the item counts as good.
func record(item *workItem, reason linkcheck.Reason, fail bool) {
	if !fail {
		item.state = stateGood
		return
	}
	item.state = stateBad
	item.reason = reason
}

// isConnectError reports whether err comes from failing to dial the host.
func isConnectError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
