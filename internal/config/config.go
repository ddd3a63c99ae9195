package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Dataset       Dataset       `mapstructure:",squash"`
	Dashboard     Dashboard     `mapstructure:",squash"`
	Map           Map           `mapstructure:",squash"`
	DatasetReload DatasetReload `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`

	ReadHeaderTimeout time.Duration `mapstructure:"server_read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"server_shutdown_timeout"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Dataset descreve de onde e como o dataset é carregado
type Dataset struct {
	Source           string `mapstructure:"dataset_source"`
	Path             string `mapstructure:"dataset_path"`
	Sheet            string `mapstructure:"dataset_sheet"`
	Table            string `mapstructure:"dataset_table"`
	DateColumn       string `mapstructure:"dataset_date_column"`
	MaxRows          int    `mapstructure:"dataset_max_rows"`
	IncomeDiffPolicy string `mapstructure:"dataset_income_diff_policy"`
}

type Dashboard struct {
	Year          int    `mapstructure:"dashboard_year"`
	DefaultMonth  int    `mapstructure:"dashboard_default_month"`
	TopN          int    `mapstructure:"dashboard_top_n"`
	MapFilterMode string `mapstructure:"dashboard_map_filter_mode"`
}

type Map struct {
	CenterLat  float64 `mapstructure:"map_center_lat"`
	CenterLon  float64 `mapstructure:"map_center_lon"`
	Zoom       float64 `mapstructure:"map_zoom"`
	Pitch      float64 `mapstructure:"map_pitch"`
	AutoCenter bool    `mapstructure:"map_auto_center"`
}

type DatasetReload struct {
	CronSchedule string `mapstructure:"dataset_reload_cron"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

const (
	DatasetSourceFile     = "file"
	DatasetSourceDatabase = "database"

	IncomeDiffPolicyAuto   = "auto"
	IncomeDiffPolicyDerive = "derive"
)

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")
	viper.SetDefault("SERVER_READ_HEADER_TIMEOUT", "2s")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "15s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/emerging_areas?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATASET_SOURCE", DatasetSourceFile)
	viper.SetDefault("DATASET_PATH", "app/sample_data/ea_sample.csv")
	viper.SetDefault("DATASET_SHEET", "")
	viper.SetDefault("DATASET_TABLE", "emerging_areas")
	viper.SetDefault("DATASET_DATE_COLUMN", "observation_start_date")
	viper.SetDefault("DATASET_MAX_ROWS", 0) // 0 = sem limite
	viper.SetDefault("DATASET_INCOME_DIFF_POLICY", IncomeDiffPolicyAuto)

	viper.SetDefault("DASHBOARD_YEAR", 2019)
	viper.SetDefault("DASHBOARD_DEFAULT_MONTH", 4)
	viper.SetDefault("DASHBOARD_TOP_N", 10)
	viper.SetDefault("DASHBOARD_MAP_FILTER_MODE", string(domain.FilterModeCumulative))

	// Miami
	viper.SetDefault("MAP_CENTER_LAT", 25.7823907)
	viper.SetDefault("MAP_CENTER_LON", -80.2994983)
	viper.SetDefault("MAP_ZOOM", 9)
	viper.SetDefault("MAP_PITCH", 50)
	viper.SetDefault("MAP_AUTO_CENTER", false)

	viper.SetDefault("DATASET_RELOAD_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("DATASET_RELOAD_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return decode()
}

// decode converte as chaves do viper na struct de configuração e valida o resultado
func decode() (*Config, error) {
	config := &Config{}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Database.Driver == "sqlite" {
		config.Database.DSN = config.Database.URL
	} else {
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica combinações de configuração que impediriam o pipeline de rodar
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourceFile:
		if c.Dataset.Path == "" {
			return fmt.Errorf("config: DATASET_PATH é obrigatório para a fonte %q", c.Dataset.Source)
		}
	case DatasetSourceDatabase:
		if c.Dataset.Table == "" {
			return fmt.Errorf("config: DATASET_TABLE é obrigatório para a fonte %q", c.Dataset.Source)
		}
	default:
		return fmt.Errorf("config: DATASET_SOURCE inválido: %q", c.Dataset.Source)
	}

	if c.Dataset.IncomeDiffPolicy != IncomeDiffPolicyAuto && c.Dataset.IncomeDiffPolicy != IncomeDiffPolicyDerive {
		return fmt.Errorf("config: DATASET_INCOME_DIFF_POLICY inválido: %q", c.Dataset.IncomeDiffPolicy)
	}

	if c.Dataset.MaxRows < 0 {
		return fmt.Errorf("config: DATASET_MAX_ROWS não pode ser negativo")
	}

	if !domain.FilterMode(c.Dashboard.MapFilterMode).Valid() {
		return fmt.Errorf("config: DASHBOARD_MAP_FILTER_MODE inválido: %q", c.Dashboard.MapFilterMode)
	}

	if c.Dashboard.DefaultMonth < domain.MinMonth || c.Dashboard.DefaultMonth > domain.MaxMonth {
		return fmt.Errorf("config: DASHBOARD_DEFAULT_MONTH deve estar entre %d e %d", domain.MinMonth, domain.MaxMonth)
	}

	if c.Dashboard.TopN <= 0 {
		return fmt.Errorf("config: DASHBOARD_TOP_N deve ser positivo")
	}

	return nil
}

// RenderOptions monta as opções fixas do pipeline a partir da configuração
func (c *Config) RenderOptions() domain.RenderOptions {
	return domain.RenderOptions{
		Year:          c.Dashboard.Year,
		TopN:          c.Dashboard.TopN,
		MapFilterMode: domain.FilterMode(c.Dashboard.MapFilterMode),
		MapCenter:     domain.LatLon{Lat: c.Map.CenterLat, Lon: c.Map.CenterLon},
		MapZoom:       c.Map.Zoom,
		MapPitch:      c.Map.Pitch,
		AutoCenter:    c.Map.AutoCenter,
	}
}

// DefaultParams retorna os controles iniciais do painel
func (c *Config) DefaultParams() domain.RenderParams {
	return domain.RenderParams{
		Month:        c.Dashboard.DefaultMonth,
		ShowNegative: false,
		LayerStyle:   domain.LayerStyleColumn,
	}
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
