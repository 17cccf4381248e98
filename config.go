package tink

import "fmt"

// TelemetryConfig controls the optional OpenTelemetry export for primitive
// operation metrics and traces. Telemetry is off by default; nothing about
// key material or plaintext is ever recorded, only operation names, counts,
// sizes and error totals.
type TelemetryConfig struct {
	// Enabled turns telemetry export on.
	Enabled bool
	// ServiceName is reported as the OpenTelemetry service name.
	ServiceName string
	// Endpoint is the OTLP/gRPC collector endpoint, e.g. "localhost:4317".
	Endpoint string
	// Insecure disables transport security on the exporter connection.
	Insecure bool
	// Headers are extra headers sent with every export request.
	Headers map[string]string
}

// Validate checks that an enabled configuration is complete.
func (c *TelemetryConfig) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}
	if c.Endpoint == "" {
		return fmt.Errorf("%w: telemetry endpoint must be configured", ErrConfiguration)
	}
	if c.ServiceName == "" {
		c.ServiceName = "tink"
	}
	return nil
}
