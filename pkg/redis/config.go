package redis

import "time"

type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"` // ConnectionURL is the store address, e.g. "redis://:password@localhost:6379/0". The "store://" scheme is accepted as an alias of "redis://".
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"1"`                      // RetryAttempts is the number of startup ping attempts before giving up.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"1s"`                     // RetryInterval is the delay between startup attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`                   // ConnectTimeout bounds the whole startup sequence.
}
