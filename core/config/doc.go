// Package config provides configuration management for the HR sync service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared directly on struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL/SQLite connection details
//   - Source: remote HR API credentials and retry policy
//   - Report: report artifact directory and S3 archival toggle
//   - Storage: S3/MinIO credentials and bucket settings (report archival)
//   - Scheduler: integration run cadence
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Source.BaseURL)
package config
