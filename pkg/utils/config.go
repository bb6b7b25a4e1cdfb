package utils

import (
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Bcrypt   BcryptConfig
	JWT      JWTConfig
	Signup   TokenTTLConfig
	Forgot   TokenTTLConfig
	Email    EmailConfig
	Twilio   TwilioConfig
}

type AppConfig struct {
	Name     string
	Port     string
	Env      string
	Frontend string
	Debug    bool
	LogPath  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type BcryptConfig struct {
	Cost int
}

type JWTConfig struct {
	Access  JWTKeyConfig
	Refresh JWTKeyConfig
}

type JWTKeyConfig struct {
	Secret      string
	ExpiryHours int
}

type TokenTTLConfig struct {
	ExpiryHours int
}

type EmailConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	From           string
	MailerSendKey  string
	MailerSendFrom string
}

type TwilioConfig struct {
	AccountSID  string
	AuthToken   string
	PhoneNumber string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "TrueTimeShare")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("APP_ENV", EnvDevelopment)
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("JWT_ACCESS_EXPIRY_HOUR", 1)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOUR", 72)
	viper.SetDefault("SIGNUP_EXPIRY_HOUR", 12)
	viper.SetDefault("FORGOT_EXPIRY_HOUR", 12)

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional when everything comes from real env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Port:     viper.GetString("PORT"),
			Env:      viper.GetString("APP_ENV"),
			Frontend: viper.GetString("APP_FRONTEND"),
			Debug:    viper.GetBool("DEBUG"),
			LogPath:  viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Bcrypt: BcryptConfig{
			Cost: viper.GetInt("BCRYPT_COST"),
		},
		JWT: JWTConfig{
			Access: JWTKeyConfig{
				Secret:      viper.GetString("JWT_ACCESS_SECRET"),
				ExpiryHours: viper.GetInt("JWT_ACCESS_EXPIRY_HOUR"),
			},
			Refresh: JWTKeyConfig{
				Secret:      viper.GetString("JWT_REFRESH_SECRET"),
				ExpiryHours: viper.GetInt("JWT_REFRESH_EXPIRY_HOUR"),
			},
		},
		Signup: TokenTTLConfig{
			ExpiryHours: viper.GetInt("SIGNUP_EXPIRY_HOUR"),
		},
		Forgot: TokenTTLConfig{
			ExpiryHours: viper.GetInt("FORGOT_EXPIRY_HOUR"),
		},
		Email: EmailConfig{
			Host:           viper.GetString("SMTP_HOST"),
			Port:           viper.GetInt("SMTP_PORT"),
			User:           viper.GetString("SMTP_USER"),
			Password:       viper.GetString("SMTP_PASS"),
			From:           viper.GetString("EMAIL_FROM"),
			MailerSendKey:  viper.GetString("MAILERSEND_API_KEY"),
			MailerSendFrom: viper.GetString("MAILERSEND_FROM"),
		},
		Twilio: TwilioConfig{
			AccountSID:  viper.GetString("TWILIO_ACCOUNT_SID"),
			AuthToken:   viper.GetString("TWILIO_AUTH_TOKEN"),
			PhoneNumber: viper.GetString("TWILIO_PHONE_NUMBER"),
		},
	}

	return config, nil
}

// IsProduction reports whether outbound notifications should actually be sent.
func (c *Config) IsProduction() bool {
	return c.App.Env == EnvProduction
}
