package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a configuration
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return strings.Join(msgs, "\n")
}

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	var errs ValidationErrors

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: "is required"})
	}

	switch cfg.StorageDriver {
	case DriverPostgres:
		for field, value := range map[string]string{
			"DB_HOST": cfg.DBHost,
			"DB_USER": cfg.DBUser,
			"DB_NAME": cfg.DBName,
		} {
			if value == "" {
				errs = append(errs, ValidationError{Field: field, Message: "is required for the postgres driver"})
			}
		}
		if cfg.DBPassword == "" {
			errs = append(errs, ValidationError{Field: "db_password", Message: secretMessage(env)})
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{Field: "SQLITE_PATH", Message: "is required for the sqlite driver"})
		}
	case DriverMemory:
		if env == Production {
			errs = append(errs, ValidationError{Field: "STORAGE_DRIVER", Message: "memory storage is not allowed in production"})
		}
	default:
		errs = append(errs, ValidationError{Field: "STORAGE_DRIVER", Message: fmt.Sprintf("unknown driver %q", cfg.StorageDriver)})
	}

	if cfg.JWTSecret == "" {
		errs = append(errs, ValidationError{Field: "jwt_secret", Message: secretMessage(env)})
	}
	if cfg.JWTTTL <= 0 {
		errs = append(errs, ValidationError{Field: "JWT_TTL", Message: "must be positive"})
	}
	if cfg.GenerateRateLimit <= 0 {
		errs = append(errs, ValidationError{Field: "GENERATE_RATE_LIMIT", Message: "must be positive"})
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{Field: "LOG_FORMAT", Message: "must be text or json"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func secretMessage(env Environment) string {
	if env == CI {
		return "environment variable is required in CI environment"
	}
	return "secret is required"
}
