package config

import "time"

// DefaultAPIURL is used when API_URL is not set.
const DefaultAPIURL = "http://localhost:8080/api"

type App struct {
	Port        string        `env:"APP_PORT" default:"4200"`
	APIURL      string        `env:"API_URL" default:"http://localhost:8080/api"`
	APITimeout  time.Duration `env:"API_TIMEOUT"`
	StubAPIPort string        `env:"STUB_API_PORT"`
	Env         string        `env:"APP_ENV" default:"dev"`
	LogLevel    string        `env:"LOG_LEVEL" default:"info"`
}
