package utils

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	Payment  PaymentConfig
	Exchange ExchangeConfig
	Upload   UploadConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	URI  string
	Name string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

type PaymentConfig struct {
	SecretKey       string
	BaseURL         string
	MethodID        int
	Currency        string
	NotificationURL string
	RedirectionURL  string
}

type ExchangeConfig struct {
	BaseURL string
}

type UploadConfig struct {
	Dir       string
	URLPrefix string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_NAME", "travel")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("PAYMENT_BASE_URL", "https://accept.paymob.com")
	viper.SetDefault("PAYMENT_CURRENCY", "EGP")
	viper.SetDefault("PAYMENT_METHOD_ID", 4888997)
	viper.SetDefault("EXCHANGE_BASE_URL", "https://api.exchangerate-api.com")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("UPLOAD_URL_PREFIX", "/uploads")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			URI:  viper.GetString("MONGODB_URI"),
			Name: viper.GetString("DB_NAME"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
			To:       viper.GetString("EMAIL_TO"),
		},
		Payment: PaymentConfig{
			SecretKey:       viper.GetString("PAYMOB_SECRET_KEY"),
			BaseURL:         viper.GetString("PAYMENT_BASE_URL"),
			MethodID:        viper.GetInt("PAYMENT_METHOD_ID"),
			Currency:        viper.GetString("PAYMENT_CURRENCY"),
			NotificationURL: viper.GetString("PAYMENT_NOTIFICATION_URL"),
			RedirectionURL:  viper.GetString("PAYMENT_REDIRECTION_URL"),
		},
		Exchange: ExchangeConfig{
			BaseURL: viper.GetString("EXCHANGE_BASE_URL"),
		},
		Upload: UploadConfig{
			Dir:       viper.GetString("UPLOAD_DIR"),
			URLPrefix: viper.GetString("UPLOAD_URL_PREFIX"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(viper.GetString("ALLOWED_ORIGINS")),
		},
	}

	return config, nil
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
