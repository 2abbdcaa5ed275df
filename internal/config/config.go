package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at process start. It is
// constructed once by Load and passed explicitly to the components that need
// it; there is no global instance.
type Config struct {
	// application config
	AppName     string
	AppVersion  string
	AppPort     string
	Debug       bool
	LogFilePath string
	// datastore config
	DatastoreProjectID  string
	DatastoreDatabaseID string
	DatastoreKind       string
	// search config
	SearchEnabled    bool
	ElasticsearchURL string
}

// Load reads the optional .env file and the process environment. A missing
// .env file is not an error; a malformed one is.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return &Config{
		AppName:             getEnvString("APP_NAME", "Employee Registry API"),
		AppVersion:          getEnvString("APP_VERSION", "2.0.0"),
		AppPort:             getEnvString("APP_PORT", "8000"),
		Debug:               getEnvBool("DEBUG", false),
		LogFilePath:         getEnvString("LOG_FILE_PATH", ""),
		DatastoreProjectID:  getEnvString("DATASTORE_PROJECT_ID", "employee-registry"),
		DatastoreDatabaseID: getEnvString("DATASTORE_DATABASE_ID", ""),
		DatastoreKind:       getEnvString("DATASTORE_KIND", "employees"),
		SearchEnabled:       getEnvBool("SEARCH_ENABLED", false),
		ElasticsearchURL:    getEnvString("ELASTICSEARCH_URL", "http://localhost:9200"),
	}, nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}
