package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Analytics Analytics `mapstructure:",squash"`
	Cache     Cache     `mapstructure:",squash"`
	JobRuns   JobRuns   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Analytics struct {
	Enabled             bool     `mapstructure:"analytics_enabled"`
	Seed                int64    `mapstructure:"analytics_seed"`
	Days                int      `mapstructure:"analytics_days"`
	Timezone            string   `mapstructure:"analytics_timezone"`
	PointsLimit         int      `mapstructure:"analytics_points_limit"`
	UnknownRoleFallback string   `mapstructure:"analytics_unknown_role_fallback"`
	Tenants             []string `mapstructure:"analytics_tenants"` // formato id:tipo
}

type Cache struct {
	TTL          time.Duration `mapstructure:"cache_ttl"`
	SweepCron    string        `mapstructure:"cache_sweep_cron"`
	SweepEnabled bool          `mapstructure:"cache_sweep_enabled"`
}

type JobRuns struct {
	PersistEnabled bool `mapstructure:"job_runs_persist_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("ANALYTICS_ENABLED", true)
	viper.SetDefault("ANALYTICS_SEED", 42)
	viper.SetDefault("ANALYTICS_DAYS", 120)
	viper.SetDefault("ANALYTICS_TIMEZONE", "America/Argentina/Buenos_Aires")
	viper.SetDefault("ANALYTICS_POINTS_LIMIT", 1000)
	viper.SetDefault("ANALYTICS_UNKNOWN_ROLE_FALLBACK", "admin")
	viper.SetDefault("ANALYTICS_TENANTS", "") // vazio usa os tenants padrão

	// Defaults para a limpeza do cache de respostas
	viper.SetDefault("CACHE_TTL", "10m")
	viper.SetDefault("CACHE_SWEEP_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("CACHE_SWEEP_ENABLED", false)

	viper.SetDefault("JOB_RUNS_PERSIST_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

func BuildDSN(db Database) string {
	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
}

// Location devolve o fuso configurado, ou UTC quando o nome é inválido
func (a Analytics) Location() *time.Location {
	if a.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso horário inválido %q, usando UTC", a.Timezone)
		return time.UTC
	}
	return loc
}

// ParseTenants converte a lista id:tipo em tenants. Uma lista vazia devolve os tenants padrão.
func (a Analytics) ParseTenants() ([]domain.Tenant, error) {
	tenants := make([]domain.Tenant, 0, len(a.Tenants))
	for _, raw := range a.Tenants {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		id, kind, found := strings.Cut(raw, ":")
		id = strings.TrimSpace(id)
		kind = strings.TrimSpace(kind)
		if !found || id == "" {
			return nil, fmt.Errorf("tenant inválido %q: formato esperado id:tipo", raw)
		}

		switch domain.TenantType(kind) {
		case domain.TenantMunicipio, domain.TenantPyme:
		default:
			return nil, fmt.Errorf("tipo de tenant inválido %q para %s", kind, id)
		}

		tenants = append(tenants, domain.Tenant{ID: id, Type: domain.TenantType(kind)})
	}

	if len(tenants) == 0 {
		return domain.DefaultTenants(), nil
	}
	return tenants, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
