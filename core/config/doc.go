// Package config provides configuration management for testsrv.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live in the `default` struct tags of each
// section, so running without any configuration serves Content/.out next to
// the executable on port 5080.
//
// # Configuration Structure
//
//   - Server: bind host, port, graceful shutdown
//   - Site: served directory and directory listings
//   - Log: logging level and format
//   - Storage: S3/MinIO credentials and bucket used by `publish`
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
