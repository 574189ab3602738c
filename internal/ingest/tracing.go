package ingest

import (
	"fmt"

	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegermetrics "github.com/uber/jaeger-lib/metrics"
)

// InitTracer sets up the Jaeger tracer and installs it as the global
// opentracing tracer. The returned func flushes and closes the tracer.
func InitTracer(serviceName, collectorEndpoint string) (opentracing.Tracer, func(), error) {
	cfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:          false,
			CollectorEndpoint: collectorEndpoint,
		},
	}

	tracer, closer, err := cfg.NewTracer(
		jaegercfg.Logger(jaeger.StdLogger),
		jaegercfg.Metrics(jaegermetrics.NullFactory),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot initialize jaeger tracer for %s: %v", serviceName, err)
	}

	opentracing.SetGlobalTracer(tracer)
	return tracer, func() { closer.Close() }, nil
}
