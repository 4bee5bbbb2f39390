package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strings" // strings normalizes optional values

    "github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.
type Config struct {
    Env           string // application environment (e.g. "dev", "prod")
    Port          string // HTTP port to listen on
    DBUser        string // database username
    DBPass        string // database password (optional)
    DBHost        string // database host address
    DBPort        string // database port number
    DBName        string // database name
    SessionSecret string // HMAC secret used to sign flash cookies
    LogLevel      string // zap level name (debug, info, warn, error)
}

// Load reads configuration values from the environment and returns a
// Config.  A .env file in the working directory is loaded first when it
// exists; variables already present in the environment win.  Required
// variables are enforced by must() and missing values cause the program
// to exit with a fatal log message.
func Load() Config {
    _ = godotenv.Load() // a missing .env file is fine
    return Config{
        Env:           must("APP_ENV"),
        Port:          must("APP_PORT"),
        DBUser:        must("DB_USER"),
        DBPass:        os.Getenv("DB_PASS"), // empty allowed
        DBHost:        must("DB_HOST"),
        DBPort:        must("DB_PORT"),
        DBName:        must("DB_NAME"),
        SessionSecret: must("SESSION_SECRET"),
        LogLevel:      strings.ToLower(getenv("LOG_LEVEL", "info")),
    }
}

// IsProduction reports whether the service runs with APP_ENV=prod.
func (c Config) IsProduction() bool {
    return strings.EqualFold(c.Env, "prod") || strings.EqualFold(c.Env, "production")
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}
