package lock

// Config holds configuration for per-document locking.
type Config struct {
	// RedisAddr enables the redis locker when set (host:port).
	RedisAddr string `mapstructure:"redis_addr" default:""`
	// RedisPassword is the redis AUTH password.
	RedisPassword string `mapstructure:"redis_password" default:""`
	// RedisDB selects the redis logical database.
	RedisDB int `mapstructure:"redis_db" default:"0"`
	// TTLSeconds bounds how long a crashed holder can block a document.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"30"`
	// WaitMillis is how long Lock retries before giving up.
	WaitMillis int `mapstructure:"wait_millis" default:"2000"`
}
