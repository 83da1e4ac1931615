package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Storage   StorageConfig
	Numbering NumberingConfig
	AI        AIConfig
	Stripe    StripeConfig
	DocsPath  string
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig ruta del archivo SQLite que guarda los blobs clarity_*.
// ":memory:" usa el almacén en memoria (nada se persiste).
type StorageConfig struct {
	Path string
}

// InMemory indica si se pidió almacenamiento efímero.
func (c StorageConfig) InMemory() bool {
	return c.Path == "" || c.Path == ":memory:"
}

// NumberingConfig comportamiento del generador de números de factura.
type NumberingConfig struct {
	DefaultFormat   string
	SubstituteMonth bool // reemplazar {MM} en el prefijo (por defecto queda literal)
}

// AIConfig proveedor de IA para textos y análisis de marca.
type AIConfig struct {
	Provider     string // gemini | openai
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
}

// StripeConfig credenciales para links de pago. Sin SecretKey se generan links simulados.
type StripeConfig struct {
	SecretKey  string
	SuccessURL string
	CancelURL  string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORAGE_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "clarity-invoices"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Path: getString(v, "STORAGE_PATH", "clarity.db"),
		},
		Numbering: NumberingConfig{
			DefaultFormat:   getString(v, "NUMBERING_DEFAULT_FORMAT", "INV-{YYYY}-{NNNN}"),
			SubstituteMonth: getBool(v, "NUMBERING_SUBSTITUTE_MONTH", false),
		},
		AI: AIConfig{
			Provider:     strings.ToLower(getString(v, "AI_PROVIDER", "gemini")),
			GeminiAPIKey: getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:  getString(v, "GEMINI_MODEL", "gemini-2.5-flash"),
			OpenAIAPIKey: getString(v, "OPENAI_API_KEY", ""),
			OpenAIModel:  getString(v, "OPENAI_MODEL", "gpt-4o-mini"),
		},
		Stripe: StripeConfig{
			SecretKey:  getString(v, "STRIPE_SECRET_KEY", ""),
			SuccessURL: getString(v, "STRIPE_SUCCESS_URL", "https://example.com/paid"),
			CancelURL:  getString(v, "STRIPE_CANCEL_URL", "https://example.com/cancel"),
		},
		DocsPath: getString(v, "DOCS_PATH", "./docs/swagger.json"),
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("HTTP_PORT inválido: %d", cfg.HTTP.Port)
	}
	switch cfg.AI.Provider {
	case "gemini", "openai":
	default:
		return nil, fmt.Errorf("AI_PROVIDER inválido: %q", cfg.AI.Provider)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}
