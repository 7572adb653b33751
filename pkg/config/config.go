package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
// Se construye una sola vez en main y se pasa por valor a los constructores.
type Config struct {
	App   AppConfig
	DB    DBConfig
	JWT   JWTConfig
	Link  LinkConfig
	Plan  PlanConfig
	HTTP  HTTPConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	FrontendURL string // destino de las redirecciones de verificación de email
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	ForceIPv4   bool // redes sin IPv6 (contenedores) contra hosts que también publican AAAA
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración del token de sesión.
type JWTConfig struct {
	Secret            string
	Issuer            string
	SessionTTLMinutes int // 120 por defecto (2 horas)
}

// SessionTTL duración del token de sesión emitido en el login.
func (c JWTConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// LinkConfig configuración de los enlaces de traspaso (hand-off) hacia la app consumidora.
type LinkConfig struct {
	BaseURL    string
	TTLMinutes int // 10 por defecto
}

// TTL duración del token embebido en el enlace.
func (c LinkConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// PlanConfig reglas de activación de planes.
type PlanConfig struct {
	TrialPlanID int64
	TrialDays   int
}

// TrialPeriod duración de la prueba gratuita.
func (c PlanConfig) TrialPeriod() time.Duration {
	return time.Duration(c.TrialDays) * 24 * time.Hour
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

// RedisConfig registro de revocación de tokens. URL vacía = registro deshabilitado.
type RedisConfig struct {
	URL    string
	Prefix string
}

// Enabled informa si hay Redis configurado.
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// SMTPConfig envío de correos de verificación. Host vacío = envío deshabilitado.
type SMTPConfig struct {
	Host          string
	Port          int
	User          string
	Password      string
	From          string
	VerifyBaseURL string // base pública de GET /api/auth/verify/:token
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, PLAN_TRIAL_DAYS, etc.
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

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "ibeauty-api"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			FrontendURL: getString(v, "FRONTEND_URL", "http://localhost:5173"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "ibeauty"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 25),
			MinConns:    getInt(v, "DB_MIN_CONNS", 2),
			ForceIPv4:   getBool(v, "DB_FORCE_IPV4", false),
		},
		JWT: JWTConfig{
			Secret:            getString(v, "JWT_SECRET", ""),
			Issuer:            getString(v, "JWT_ISSUER", "ibeauty-api"),
			SessionTTLMinutes: getInt(v, "JWT_SESSION_TTL_MINUTES", 120),
		},
		Link: LinkConfig{
			BaseURL:    strings.TrimRight(getString(v, "LINK_BASE_URL", "http://example.com"), "/"),
			TTLMinutes: getInt(v, "LINK_TTL_MINUTES", 10),
		},
		Plan: PlanConfig{
			TrialPlanID: int64(getInt(v, "PLAN_TRIAL_ID", 0)),
			TrialDays:   getInt(v, "PLAN_TRIAL_DAYS", 15),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Redis: RedisConfig{
			URL:    getString(v, "REDIS_URL", ""),
			Prefix: getString(v, "REDIS_PREFIX", "ibeauty"),
		},
		SMTP: SMTPConfig{
			Host:          getString(v, "SMTP_HOST", ""),
			Port:          getInt(v, "SMTP_PORT", 465),
			User:          getString(v, "SMTP_USER", ""),
			Password:      getString(v, "SMTP_PASSWORD", ""),
			From:          getString(v, "SMTP_FROM", ""),
			VerifyBaseURL: strings.TrimRight(getString(v, "SMTP_VERIFY_BASE_URL", "http://localhost:8080/api/auth/verify"), "/"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio")
	}
	if cfg.JWT.SessionTTLMinutes <= 0 || cfg.Link.TTLMinutes <= 0 {
		return nil, fmt.Errorf("config: los TTL de token deben ser positivos")
	}
	if cfg.Plan.TrialDays <= 0 {
		return nil, fmt.Errorf("config: PLAN_TRIAL_DAYS debe ser positivo")
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
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
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
	b, err := strconv.ParseBool(v.GetString(key))
	if err != nil {
		return def
	}
	return b
}
