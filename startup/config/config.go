package config

import "os"

type Config struct {
	Port              string
	DogWalkingDBHost  string
	DogWalkingDBPort  string
	JaegerAddress     string
	LogFilePath       string
	ValidateOwnerRefs bool
}

func NewConfig() *Config {
	return &Config{
		Port:              envOr("DOGWALKING_SERVICE_PORT", "8080"),
		DogWalkingDBHost:  envOr("DOGWALKING_DB_HOST", "localhost"),
		DogWalkingDBPort:  envOr("DOGWALKING_DB_PORT", "27017"),
		JaegerAddress:     os.Getenv("JAEGER_ADDRESS"),
		LogFilePath:       envOr("LOG_FILE_PATH", "/app/logs/dogwalking.log"),
		ValidateOwnerRefs: os.Getenv("VALIDATE_OWNER_REFS") == "true",
	}
}

func envOr(name, fallback string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return fallback
}
