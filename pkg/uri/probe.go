package uri

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/http2"

	"github.com/docbridge/docbridge/pkg/logger"
	"github.com/docbridge/docbridge/pkg/metrics"
)

const (
	probeDialTimeout = 3 * time.Second
	probeTimeout     = 5 * time.Second
)

// probeClient is shared by all probes. Startup issues at most a couple
// of probes, so the transport is kept small.
var probeClient = newProbeClient()

func newProbeClient() *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   probeDialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   2,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   probeDialTimeout,
		ResponseHeaderTimeout: probeDialTimeout,
		ExpectContinueTimeout: 1 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	if err := http2.ConfigureTransport(transport); err != nil {
		logger.Warn("failed to configure HTTP/2 for probe client", zap.Error(err))
	}

	return &http.Client{
		Transport: transport,
		Timeout:   probeTimeout,
	}
}

// LogUnreachableHost probes the URL's host with a HEAD request and logs
// a warning if it cannot be reached. Reachability problems never fail
// configuration loading; DNS or firewall conditions at startup are not
// proof the host will stay unreachable. Any HTTP response, whatever the
// status, counts as reachable.
func (v *Validated) LogUnreachableHost(ctx context.Context) {
	timer := metrics.NewTimer("probe")

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, v.raw, nil)
	if err != nil {
		logger.Warn("unable to build probe request", zap.String("url", v.raw), zap.Error(err))
		return
	}

	resp, err := probeClient.Do(req)
	duration := timer.Stop()
	metrics.ProbeDuration.Observe(duration.Seconds())

	if err != nil {
		metrics.ProbeAttempts.WithLabelValues("unreachable").Inc()
		logger.Warn("host is not reachable",
			zap.String("url", v.raw),
			zap.Duration("duration", duration),
			zap.Error(err))
		return
	}
	defer resp.Body.Close()

	metrics.ProbeAttempts.WithLabelValues("reachable").Inc()
	logger.Debug("host is reachable",
		zap.String("url", v.raw),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))
}
