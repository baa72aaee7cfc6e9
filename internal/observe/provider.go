package observe

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Provider bridges OpenTelemetry metrics into a Prometheus registry so they
// can be scraped from /metrics.
type Provider struct {
	registry *prometheus.Registry
	meter    *sdkmetric.MeterProvider
}

// NewProvider creates a MeterProvider exporting into a fresh registry that
// also carries the Go runtime and process collectors.
func NewProvider() (*Provider, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, err
	}

	return &Provider{
		registry: reg,
		meter:    sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)),
	}, nil
}

// MeterProvider returns the provider to build instruments from.
func (p *Provider) MeterProvider() *sdkmetric.MeterProvider { return p.meter }

// Handler serves the registry in the Prometheus text format.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Shutdown flushes and stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.meter.Shutdown(ctx)
}
