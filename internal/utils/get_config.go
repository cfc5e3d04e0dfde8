package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Server
	AppPort     string `yaml:"APP_PORT"`
	AppTimezone string `yaml:"APP_TIMEZONE"`

	// Admin gate
	JWTSecret         string `yaml:"JWT_SECRET"`
	AdminPasswordHash string `yaml:"ADMIN_PASSWORD_HASH"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

var defaults = map[string]string{
	"APP_PORT":     "8080",
	"APP_TIMEZONE": "UTC",
	"DB_PORT":      "5432",
}

func LoadConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error reading .env file: %s\n", err)
	}
	if err := LoadConfigFrom("config.yaml"); err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	}
}

// LoadConfigFrom replaces the yaml layer of the configuration.
func LoadConfigFrom(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var next Config
	if err := yaml.Unmarshal(file, &next); err != nil {
		return err
	}
	config = next
	return nil
}

// GetConfig resolves a key from the environment first, then config.yaml,
// then the built-in defaults.
func GetConfig(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v := fromFile(key); v != "" {
		return v
	}
	return defaults[key]
}

func fromFile(key string) string {
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
	case "APP_TIMEZONE":
		return config.AppTimezone
	case "JWT_SECRET":
		return config.JWTSecret
	case "ADMIN_PASSWORD_HASH":
		return config.AdminPasswordHash
	case "APP_URL":
		return config.AppURL
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
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
