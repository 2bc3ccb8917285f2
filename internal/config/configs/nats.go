package configs

// NATS configures the decision event stream.
type NATS struct {
	Enabled       bool   `env:"ENABLED" envDefault:"false"`
	URL           string `env:"URL" envDefault:"nats://localhost:4222"`
	SubjectPrefix string `env:"SUBJECT_PREFIX" envDefault:"campaign.decisions"`
}
