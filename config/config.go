package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultFormEndpoint is the Formspree form both lead forms post to
	DefaultFormEndpoint = "https://formspree.io/f/xdkwebkn"
	// DefaultFormTimeout bounds a single submission attempt
	DefaultFormTimeout = 10 * time.Second
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Page metadata, applied once when the site is initialised
	SiteTitle       string
	SiteDescription string
	// Lead forms
	FormEndpoint string
	FormTimeout  time.Duration
	// Contact details shown on the page
	ContactPhone   string
	ContactEmail   string
	WhatsAppNumber string
	// Email (Resend)
	ResendAPIKey    string
	EmailFrom       string
	EmailFromName   string
	EmailTestMode   bool // When true, emails are logged to console instead of sent
	LeadNotifyEmail string
	// Other
	AllowedOrigins []string
	StaticDir      string
	CatalogPath    string // Empty uses the embedded content
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Cloudflare R2 Storage (media hosting)
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		AppURL:             strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		SiteTitle:          getEnv("SITE_TITLE", "Najma Al Khautar — Rhodes Grass & Premium Animal Feed"),
		SiteDescription:    getEnv("SITE_DESCRIPTION", "Najma Al Kauthar supplies premium Rhodes Grass, wheat, corn and tailored feed mixes — export-ready and trusted across multiple countries."),
		FormEndpoint:       getEnv("FORM_ENDPOINT", DefaultFormEndpoint),
		FormTimeout:        getEnvDuration("FORM_TIMEOUT", DefaultFormTimeout),
		ContactPhone:       getEnv("CONTACT_PHONE", "+971524050997"),
		ContactEmail:       getEnv("CONTACT_EMAIL", "najmaalkauthar@gmail.com"),
		WhatsAppNumber:     getEnv("WHATSAPP_NUMBER", "971524050997"),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		EmailFrom:          getEnv("EMAIL_FROM", "noreply@najmaalkhautar.com"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "Najma Al Khautar Website"),
		EmailTestMode:      getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		LeadNotifyEmail:    getEnv("LEAD_NOTIFY_EMAIL", ""),
		AllowedOrigins:     strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		StaticDir:          getEnv("STATIC_DIR", "static"),
		CatalogPath:        os.Getenv("CATALOG_PATH"),
		TurnstileSiteKey:   getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		R2AccountID:        getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:      getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:  getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:       getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:        getEnv("R2_PUBLIC_URL", ""),
	}
}

// IsProduction reports whether the server runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s (%q), using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
