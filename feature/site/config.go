package site

// Config holds configuration for the static site feature.
type Config struct {
	// Root is the served directory. Relative paths are resolved against the
	// directory containing the running executable.
	Root string `mapstructure:"root" default:"Content/.out"`
	// Browse enables directory listings for directories without an index file.
	Browse bool `mapstructure:"browse" default:"true"`
}
