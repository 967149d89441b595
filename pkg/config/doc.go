// Package config provides configuration management for the auditor.
//
// Configuration is read from a YAML file with environment variable overrides,
// validated, and exposed as a typed Config.
//
// # Configuration Loading
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("auditor.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("auditor.yaml")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention AUDITOR_SECTION_FIELD:
//
//   - AUDITOR_INPUTS_DIR overrides inputs.dir
//   - AUDITOR_REPORT_FORMAT overrides report.format
//   - AUDITOR_AUDIT_TEMPLATE_COLUMNS overrides audit.template_columns (comma-separated)
//   - AUDITOR_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Example Configuration
//
//	inputs:
//	  dir: ./data
//	  content: batch_0412.csv
//	audit:
//	  category_column: "1st Category"
//	  strict_delimiters: true
//	report:
//	  output_dir: ./reports
//	  format: csv
//	  max_summary_diagnostics: 3
//	watch:
//	  debounce: 1s
//	telemetry:
//	  logging:
//	    level: debug
//	  metrics:
//	    listen_address: "127.0.0.1:9090"
//
// # Singleton Pattern
//
//	if err := config.Initialize("auditor.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	cfg := config.GetConfig()
//
// For testing, prefer explicit Config instances over the singleton.
package config
