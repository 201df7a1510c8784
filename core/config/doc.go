// Package config provides configuration management for the zoo manager.
//
// It utilizes Viper for loading configuration from environment variables,
// optionally seeded from a .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key, CORS origins, landing page directory
//   - Database: driver (mysql, sqlite) and connection details
//   - Storage: S3/MinIO credentials and bucket for the landing page and snapshots
//   - Log: Logging level and format
//
// Defaults come from the `default` struct tags; environment variables
// override them (SERVER_PORT -> server.port).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
