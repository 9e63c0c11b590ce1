package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	Cache          Cache          `mapstructure:",squash"`
	Report         Report         `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type App struct {
	Env       string `mapstructure:"app_env"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Dataset descreve o arquivo de vendas e como ele deve ser lido
type Dataset struct {
	FilePath        string   `mapstructure:"data_file_path"`
	Encoding        string   `mapstructure:"data_file_encoding"`
	CurrencySymbols []string `mapstructure:"data_currency_symbols"`
}

// Cache define as expirações do conjunto em memória. Zero desativa o limite.
type Cache struct {
	SlidingExpiration  time.Duration `mapstructure:"cache_sliding_expiration"`
	AbsoluteExpiration time.Duration `mapstructure:"cache_absolute_expiration"`
}

type Report struct {
	TopN             int `mapstructure:"report_top_n"`
	RecentSalesLimit int `mapstructure:"recent_sales_limit"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATA_FILE_PATH", "data/Data.csv")
	viper.SetDefault("DATA_FILE_ENCODING", "windows-1252")
	viper.SetDefault("DATA_CURRENCY_SYMBOLS", "£,$,€")

	viper.SetDefault("CACHE_SLIDING_EXPIRATION", "30m") // Expira após 30 minutos sem acesso
	viper.SetDefault("CACHE_ABSOLUTE_EXPIRATION", "1h") // Expira 1 hora após a carga

	viper.SetDefault("REPORT_TOP_N", 10)
	viper.SetDefault("RECENT_SALES_LIMIT", 50)

	viper.SetDefault("DATASET_REFRESH_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FORMAT", "text")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return decode(viper.GetViper())
}

// decode converte as chaves do viper na estrutura Config
func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Dataset.CurrencySymbols = trimAll(config.Dataset.CurrencySymbols)
	config.Server.AllowedOrigins = trimAll(config.Server.AllowedOrigins)

	return config, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
