package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
	"strconv"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Server configuration
	AppPort  string `yaml:"APP_PORT"`
	LogLevel string `yaml:"LOG_LEVEL"`
	LogFile  string `yaml:"LOG_FILE"`

	// Session configuration
	SessionCookieName    string `yaml:"SESSION_COOKIE_NAME"`
	SessionDays          int    `yaml:"SESSION_DAYS"`
	SessionPurgeSchedule string `yaml:"SESSION_PURGE_SCHEDULE"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:              "3000",
		LogLevel:             "info",
		LogFile:              "./logs/matrafl.log",
		SessionCookieName:    "MATRAFL_SESSION",
		SessionDays:          7,
		SessionPurgeSchedule: "*/7 * * * * *",
	}
}

// LoadConfigFile reads the YAML file at path. Keys missing from the file keep
// their defaults and a missing file leaves the defaults in place.
func LoadConfigFile(path string) {
	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	loaded := defaultConfig()
	err = yaml.Unmarshal(file, &loaded)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
	if loaded.SessionDays <= 0 {
		loaded.SessionDays = defaultConfig().SessionDays
	}
	config = loaded
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "APP_PORT":
		return config.AppPort
	case "LOG_LEVEL":
		return config.LogLevel
	case "LOG_FILE":
		return config.LogFile
	case "SESSION_COOKIE_NAME":
		return config.SessionCookieName
	case "SESSION_DAYS":
		return strconv.Itoa(config.SessionDays)
	case "SESSION_PURGE_SCHEDULE":
		return config.SessionPurgeSchedule
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}

// SessionDays is the session lifetime, also used for the cookie expiry.
func SessionDays() int {
	return config.SessionDays
}
