// Package transport builds the HTTP client shared by every Valorant API call.
package transport

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const DefaultUserAgent = "govalorant-feeds/1.0 (+https://github.com/Feuerlord2/govalorant)"

// Options configures New.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// Registerer receives the outgoing request metrics. Nil disables them.
	Registerer prometheus.Registerer
}

// New returns an *http.Client with a timeout, a fixed User-Agent and, when a
// registerer is given, request counters and latency histograms.
func New(opts Options) (*http.Client, error) {
	var rt http.RoundTripper = http.DefaultTransport

	if opts.Registerer != nil {
		requests := prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "valorant_api",
			Name:      "requests_total",
			Help:      "Requests sent to the Valorant API, by status code and method.",
		}, []string{"code", "method"})
		duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "valorant_api",
			Name:      "request_duration_seconds",
			Help:      "Latency of requests sent to the Valorant API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"code", "method"})

		for _, c := range []prometheus.Collector{requests, duration} {
			if err := opts.Registerer.Register(c); err != nil {
				return nil, err
			}
		}
		rt = promhttp.InstrumentRoundTripperCounter(requests,
			promhttp.InstrumentRoundTripperDuration(duration, rt))
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: &userAgentTransport{next: rt, userAgent: ua},
	}, nil
}

type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(req)
}
