// Package observe provides telemetry for boundary executions: OpenTelemetry
// tracing and metrics plus structured JSON logging, behind a single Observer
// that owns provider lifecycle. Cores in this module stay telemetry-free and
// expose hooks; this package supplies the implementations to plug in.
package observe
