package lineitems

// Config holds item behaviour settings.
type Config struct {
	// DefaultUnit is written to the seed row.
	DefaultUnit string `mapstructure:"default_unit" default:"式"`
	// ExportPrefix is the object key prefix for document snapshots.
	ExportPrefix string `mapstructure:"export_prefix" default:"snapshots"`
	// Enabled toggles the HTTP routes.
	Enabled bool `mapstructure:"enabled" default:"true"`
}
