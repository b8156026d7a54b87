package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port              string
	IsProduction      bool
	DataFile          string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	FrontendBaseURL   string

	// Bank bootstrap values.
	SignupBonus          decimal.Decimal
	AdminUsername        string
	AdminPassword        string
	AdminFullName        string
	AdminStartingBalance decimal.Decimal
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Every key has a development default.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DATA_FILE", "data/vovabank.json")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "vovabank-backend")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("SIGNUP_BONUS", "5")
	viper.SetDefault("ADMIN_USERNAME", "qrasickz")
	viper.SetDefault("ADMIN_PASSWORD", "1111")
	viper.SetDefault("ADMIN_FULL_NAME", "Head Administrator")
	viper.SetDefault("ADMIN_STARTING_BALANCE", "1000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DataFile = viper.GetString("DATA_FILE")
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	if !cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	bonus, err := decimal.NewFromString(viper.GetString("SIGNUP_BONUS"))
	if err != nil || bonus.IsNegative() {
		return nil, fmt.Errorf("invalid SIGNUP_BONUS %q", viper.GetString("SIGNUP_BONUS"))
	}
	cfg.SignupBonus = bonus

	adminBalance, err := decimal.NewFromString(viper.GetString("ADMIN_STARTING_BALANCE"))
	if err != nil || adminBalance.IsNegative() {
		return nil, fmt.Errorf("invalid ADMIN_STARTING_BALANCE %q", viper.GetString("ADMIN_STARTING_BALANCE"))
	}
	cfg.AdminStartingBalance = adminBalance

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	cfg.AdminFullName = viper.GetString("ADMIN_FULL_NAME")

	return cfg, nil
}
