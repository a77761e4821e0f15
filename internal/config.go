package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host            string        `env:"HOST"`
	Port            int           `env:"PORT,required=true"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,required=true"`
	RoomCapacity    int           `env:"ROOM_CAPACITY,default=10"`
	SendTimeout     time.Duration `env:"SEND_TIMEOUT,required=true"`
	SendBufferSize  int           `env:"SEND_BUFFER_SIZE,required=true"`
	ReplayLimit     *int          `env:"REPLAY_LIMIT"`
	StatsInterval   time.Duration `env:"STATS_INTERVAL,required=true"`
	GCInterval      time.Duration `env:"GC_INTERVAL,required=true"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,required=true"`
}

func (c Config) Validate() error {
	if c.RoomCapacity <= 0 {
		return fmt.Errorf("ROOM_CAPACITY must be positive, got %d", c.RoomCapacity)
	}
	if c.SendBufferSize <= 0 {
		return fmt.Errorf("SEND_BUFFER_SIZE must be positive, got %d", c.SendBufferSize)
	}
	return nil
}
