// Package config handles configuration loading for sqlpack.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults; running with no
// config file at all is fully supported.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from SQLPACK_CONFIG environment variable
//  2. ./sqlpack.yaml (current directory)
//  3. ~/.config/sqlpack/config.yaml
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	database:
//	  path: "${SQLPACK_DB}"
//
// Syntax: ${VAR_NAME}. Unset variables expand to the empty string.
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: "127.0.0.1:8586"  # MCP endpoint and health checks
//
// Database:
//
//	database:
//	  path: "sales_demo.db"
//
// Tools:
//
//	tools:
//	  sample_rows: 3  # rows per table in get_database_info
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Validation
//
// Load() validates:
//
//   - Server address and database path are non-empty
//   - Sample row count is not negative
//   - Logging level and format values
//
// # Usage
//
// Load configuration from a path:
//
//	cfg, err := config.Load("/etc/sqlpack/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or start from the defaults when no file exists:
//
//	cfg := config.Default()
package config
