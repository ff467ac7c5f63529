package common

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	ProjectID string

	Domain string

	GAEService string

	GAEVersion string

	Env string

	// Production flag indicating if app is running the production backend on appengine
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

const (
	productionProject = "atelier-aurum-prod"

	TestProjectID = "atelier-aurum-dev"
)

// Firestore query operators
const (
	In = "in"
)

const (
	DayDuration = 24 * time.Hour
)

func initEnvVariables() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")

	if ProjectID == "" {
		log.Fatalln("environment variable GOOGLE_CLOUD_PROJECT is not set")
	}

	IsLocalhost = gin.Mode() != gin.ReleaseMode
	GAEService = GetEnv("GAE_SERVICE", "studio-api")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	if value := os.Getenv("FIRESTORE_EMULATOR_HOST"); value != "" {
		log.Printf("Using Firestore Emulator: %s", value)
	}

	switch ProjectID {
	case productionProject:
		Env = "production"
		Production = true
		Domain = "www.atelieraurum.com"
	default:
		Env = "development"
		Production = false
		Domain = "dev.atelieraurum.com"
	}
}

func init() {
	if gin.Mode() == gin.TestMode || os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		// package is imported from tests that do not bootstrap the full env
		ProjectID = TestProjectID
		GAEService = "studio-api"
		GAEVersion = "test"
		Env = "test"
		Domain = "dev.atelieraurum.com"

		return
	}

	initEnvVariables()
}

// GetEnv gets an env variable value, if it is empty returns the given fallback value.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
