// Package observability installs OpenTelemetry tracer and meter providers
// that export over OTLP/HTTP.
//
// The process package records a span and two metrics per execution through
// the global providers. Nothing leaves the process until Setup installs real
// providers:
//
//	shutdown, err := observability.Setup(ctx, cfg.Observability)
//	if err != nil { ... }
//	defer shutdown(ctx)
package observability
