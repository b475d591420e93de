package common

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Env holds the application configuration derived from the environment.
var (
	// ProjectID is the GCP project the service itself runs in.
	ProjectID string

	// Production flag indicating if app is running the production backend.
	Production bool

	// IsLocalhost flag indicating if app is running on localhost.
	IsLocalhost bool

	GAEService string
	GAEVersion string

	// BigQueryRegion is the INFORMATION_SCHEMA region qualifier ("us", "eu", ...).
	BigQueryRegion string

	// MonitoredProjects are the projects the dashboard aggregates over when the
	// caller asks for the wildcard scope.
	MonitoredProjects []string

	// QueryTimeout bounds every outbound warehouse query.
	QueryTimeout time.Duration

	// MaxQueryResults caps the rows fetched by the expensive queries feed.
	MaxQueryResults int

	// QueryPreviewLength is the number of characters kept in query previews.
	QueryPreviewLength int

	GeminiAPIKey string
	GeminiModel  string
)

const (
	productionProject = "bq-monitor-prod"

	// TestProjectID is the project used by tests that need a bigquery client.
	TestProjectID = "bq-monitor-dev"

	defaultRegion          = "us"
	defaultQueryTimeoutSec = 300
	defaultMaxQueryResults = 500
	defaultPreviewLength   = 150
	defaultGeminiModel     = "gemini-1.5-flash"
)

func init() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	IsLocalhost = gin.Mode() != gin.ReleaseMode
	Production = ProjectID == productionProject
	GAEService = GetEnv("GAE_SERVICE", "bq-monitor")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	BigQueryRegion = strings.ToLower(GetEnv("BIGQUERY_REGION", defaultRegion))
	MonitoredProjects = splitAndTrim(GetEnv("MONITORED_PROJECTS", ""))
	QueryTimeout = time.Duration(GetEnvInt("QUERY_TIMEOUT_SECONDS", defaultQueryTimeoutSec)) * time.Second
	MaxQueryResults = GetEnvInt("MAX_QUERY_RESULTS", defaultMaxQueryResults)
	QueryPreviewLength = GetEnvInt("QUERY_PREVIEW_LENGTH", defaultPreviewLength)

	GeminiAPIKey = GetEnv("GEMINI_API_KEY", "")
	GeminiModel = GetEnv("GEMINI_MODEL", defaultGeminiModel)
}

// GetEnv returns the value of the environment variable, or the provided
// fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}

func GetEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(GetEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}

	return value
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}

	var out []string

	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// GetEnvironmentLabel returns the environment label attached to outbound
// warehouse jobs.
func GetEnvironmentLabel() string {
	if Production {
		return "production"
	}

	return "development"
}
