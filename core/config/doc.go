// Package config provides configuration management for the catalog
// reconciler.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Log: logging level and format
//   - Database: MySQL connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Snapshot: snapshot source, path, delimiter and target table
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Snapshot.Path)
package config
