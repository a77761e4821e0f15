package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// RELAY_ADDR points the suite at a running relay (host:port).
	// Left empty, the suite starts an in-process relay on a temp store.
	RelayAddr string `envconfig:"RELAY_ADDR"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// ROOM_CAPACITY only applies to the in-process relay
	RoomCapacity int `envconfig:"ROOM_CAPACITY" default:"8"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
