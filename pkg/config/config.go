package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Certificate renderer identifiers.
const (
	RendererChrome = "chrome"
	RendererGoFPDF = "gofpdf"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string
	PublicDir string

	Database     DatabaseConfig
	Redis        RedisConfig
	CORS         CORSConfig
	Log          LogConfig
	Metrics      MetricsConfig
	Lookups      LookupsConfig
	Certificates CertificatesConfig
	Export       ExportConfig
}

type DatabaseConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxOpenConns   int
	MaxIdleConns   int
	ConnectTimeout time.Duration
	RunMigrations  bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig toggles the Prometheus endpoint and middleware.
type MetricsConfig struct {
	Enabled bool
}

// LookupsConfig controls caching of the read-only reference lists.
type LookupsConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

// CertificatesConfig drives certificate layout and the PDF backend.
type CertificatesConfig struct {
	Renderer      string
	RowsPerPage   int
	Title         string
	SchoolName    string
	LogoPath      string
	Signatories   []string
	ChromeBin     string
	ChromeSandbox bool
}

// ExportConfig bounds server-side bulk exports.
type ExportConfig struct {
	PageSize int
	MaxPages int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")
	cfg.PublicDir = v.GetString("PUBLIC_DIR")

	cfg.Database = DatabaseConfig{
		Host:           v.GetString("DB_HOST"),
		Port:           v.GetInt("DB_PORT"),
		User:           v.GetString("DB_USER"),
		Password:       v.GetString("DB_PASSWORD"),
		Name:           v.GetString("DB_NAME"),
		SSLMode:        v.GetString("DB_SSL_MODE"),
		MaxOpenConns:   v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns:   v.GetInt("DB_MAX_IDLE_CONNS"),
		ConnectTimeout: parseDuration(v.GetString("DB_CONNECT_TIMEOUT"), 30*time.Second),
		RunMigrations:  v.GetBool("DB_RUN_MIGRATIONS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}

	cfg.Lookups = LookupsConfig{
		CacheEnabled: v.GetBool("ENABLE_LOOKUP_CACHE"),
		CacheTTL:     parseDuration(v.GetString("LOOKUP_CACHE_TTL"), 10*time.Minute),
	}

	renderer := strings.ToLower(strings.TrimSpace(v.GetString("CERTIFICATE_RENDERER")))
	if renderer != RendererChrome && renderer != RendererGoFPDF {
		renderer = RendererChrome
	}
	cfg.Certificates = CertificatesConfig{
		Renderer:      renderer,
		RowsPerPage:   positiveOr(v.GetInt("CERTIFICATE_ROWS_PER_PAGE"), 18),
		Title:         v.GetString("CERTIFICATE_TITLE"),
		SchoolName:    v.GetString("CERTIFICATE_SCHOOL_NAME"),
		LogoPath:      v.GetString("CERTIFICATE_LOGO_PATH"),
		Signatories:   splitAndTrim(v.GetString("CERTIFICATE_SIGNATORIES")),
		ChromeBin:     v.GetString("CHROME_BIN"),
		ChromeSandbox: !v.GetBool("CHROME_NO_SANDBOX"),
	}

	cfg.Export = ExportConfig{
		PageSize: positiveOr(v.GetInt("EXPORT_PAGE_SIZE"), 200),
		MaxPages: positiveOr(v.GetInt("EXPORT_MAX_PAGES"), 2000),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3000)
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("PUBLIC_DIR", "./public")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "pdtracker")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONNECT_TIMEOUT", "30s")
	v.SetDefault("DB_RUN_MIGRATIONS", false)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ENABLE_METRICS", true)

	v.SetDefault("ENABLE_LOOKUP_CACHE", false)
	v.SetDefault("LOOKUP_CACHE_TTL", "10m")

	v.SetDefault("CERTIFICATE_RENDERER", RendererChrome)
	v.SetDefault("CERTIFICATE_ROWS_PER_PAGE", 18)
	v.SetDefault("CERTIFICATE_TITLE", "Certificate of Professional Development")
	v.SetDefault("CERTIFICATE_SCHOOL_NAME", "Western English Language School")
	v.SetDefault("CERTIFICATE_LOGO_PATH", "./public/assets/wels-logo.png")
	v.SetDefault("CERTIFICATE_SIGNATORIES", "Professional Development Coordinator,Principal")
	v.SetDefault("CHROME_BIN", "")
	v.SetDefault("CHROME_NO_SANDBOX", true)

	v.SetDefault("EXPORT_PAGE_SIZE", 200)
	v.SetDefault("EXPORT_MAX_PAGES", 2000)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func positiveOr(n, fallback int) int {
	if n <= 0 {
		return fallback
	}
	return n
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
