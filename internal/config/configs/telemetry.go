package configs

// Telemetry configures OpenTelemetry tracing. An empty Endpoint disables
// export.
type Telemetry struct {
	Endpoint    string  `env:"EXPORTER_OTLP_ENDPOINT"`
	Insecure    bool    `env:"EXPORTER_OTLP_INSECURE" envDefault:"true"`
	ServiceName string  `env:"SERVICE_NAME" envDefault:"campaign-engine"`
	SampleRatio float64 `env:"SAMPLE_RATIO" envDefault:"1"`
}
