package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Printer   PrinterConfig
	Receipt   ReceiptConfig
	Sheets    SheetsConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type PrinterConfig struct {
	Type    string // "usb", "network", or "none"
	USBPath string
	Address string
}

// ReceiptConfig holds the store header printed on every receipt.
type ReceiptConfig struct {
	StoreName string
	Address   string
	Phone     string
}

// SheetsConfig holds the Google Sheets mirror settings. Only the
// sheets-export batch requires these; the API server ignores them.
type SheetsConfig struct {
	SpreadsheetID         string
	CredentialsFile       string
	CredentialsJSON       string
	TransactionsSheetName string
	ItemsSheetName        string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "tembakau-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "tembakau")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Jakarta")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("RECEIPT_STORE_NAME", "TOKO TEMBAKAU")
	viper.SetDefault("SHEETS_TRANSACTIONS_SHEET", "transactions")
	viper.SetDefault("SHEETS_ITEMS_SHEET", "transaction_items")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
		Receipt: ReceiptConfig{
			StoreName: viper.GetString("RECEIPT_STORE_NAME"),
			Address:   viper.GetString("RECEIPT_ADDRESS"),
			Phone:     viper.GetString("RECEIPT_PHONE"),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:         viper.GetString("SHEETS_SPREADSHEET_ID"),
			CredentialsFile:       viper.GetString("SHEETS_CREDENTIALS_FILE"),
			CredentialsJSON:       viper.GetString("SHEETS_CREDENTIALS_JSON"),
			TransactionsSheetName: viper.GetString("SHEETS_TRANSACTIONS_SHEET"),
			ItemsSheetName:        viper.GetString("SHEETS_ITEMS_SHEET"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}

// Validate checks that the mirror export has everything it needs.
// Missing configuration is startup-fatal for the batch.
func (c *SheetsConfig) Validate() error {
	if c.SpreadsheetID == "" {
		return errors.New("SHEETS_SPREADSHEET_ID is required")
	}
	if c.CredentialsFile == "" && c.CredentialsJSON == "" {
		return errors.New("SHEETS_CREDENTIALS_FILE or SHEETS_CREDENTIALS_JSON is required")
	}
	if c.TransactionsSheetName == "" || c.ItemsSheetName == "" {
		return errors.New("sheet names must not be empty")
	}
	return nil
}
