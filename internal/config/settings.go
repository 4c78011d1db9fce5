package config

// Settings contains the application config. Defaults let the relay run with no configuration.
type Settings struct {
	Port                int    `env:"PORT" envDefault:"8000"`
	MonPort             int    `env:"MON_PORT" envDefault:"8888"`
	EnablePprof         bool   `env:"ENABLE_PPROF"`
	LogLevel            string `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName         string `env:"SERVICE_NAME" envDefault:"whatsapp-relay"`
	MessagingServiceURL string `env:"MESSAGING_SERVICE_URL" envDefault:"http://localhost:8081/api/send-message"`
}
