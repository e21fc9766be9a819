package database

// Config holds configuration for the database connection.
type Config struct {
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name (or file path for sqlite).
	Name string `mapstructure:"name" default:"wordpress"`
	// Driver is the database driver (mysql, postgres, sqlite).
	Driver string `mapstructure:"driver" default:"mysql"`
	// TablePrefix is prepended to every item table name (WordPress $table_prefix + plugin prefix).
	TablePrefix string `mapstructure:"table_prefix" default:"wp_ktp_"`
	// TimeoutSeconds bounds connection setup and per-statement I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
