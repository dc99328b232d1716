package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Postgres PostgresConfig `yaml:"postgres" validate:"required"`
	Facility FacilityConfig `yaml:"facility" validate:"required"`
	Mail     MailConfig     `yaml:"mail"`
	Telegram TelegramConfig `yaml:"telegram"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Redis    RedisConfig    `yaml:"redis"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"SERVER_ADDR"             env-default:":8080" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"   validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"   validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"   validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"   validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"        validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"    validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"    validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"sacrepadel"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"     validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"          validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"           validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"          validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// FacilityConfig описывает часы работы, шаг сетки, тарифы и контакты клуба.
type FacilityConfig struct {
	Name             string        `yaml:"name"              env:"FACILITY_NAME"              env-default:"Sacré Pádel" validate:"required"`
	ContactPhone     string        `yaml:"contact_phone"     env:"FACILITY_CONTACT_PHONE"`
	UTCOffset        string        `yaml:"utc_offset"        env:"FACILITY_UTC_OFFSET"        env-default:"-06:00"      validate:"required"`
	OpenHour         int           `yaml:"open_hour"         env:"FACILITY_OPEN_HOUR"         env-default:"7"           validate:"min=0,max=23"`
	CloseHour        int           `yaml:"close_hour"        env:"FACILITY_CLOSE_HOUR"        env-default:"22"          validate:"min=1,max=24,gtfield=OpenHour"`
	SlotStep         time.Duration `yaml:"slot_step"         env:"FACILITY_SLOT_STEP"         env-default:"30m"         validate:"gt=0"`
	MinDuration      time.Duration `yaml:"min_duration"      env:"FACILITY_MIN_DURATION"      env-default:"60m"         validate:"gt=0"`
	HoldTTL          time.Duration `yaml:"hold_ttl"          env:"FACILITY_HOLD_TTL"          env-default:"10m"         validate:"gt=0"`
	DayRate          float64       `yaml:"day_rate"          env:"FACILITY_DAY_RATE"          env-default:"350"         validate:"gt=0"`
	EveningRate      float64       `yaml:"evening_rate"      env:"FACILITY_EVENING_RATE"      env-default:"400"         validate:"gt=0"`
	SwitchHour       int           `yaml:"switch_hour"       env:"FACILITY_SWITCH_HOUR"       env-default:"18"          validate:"min=0,max=24"`
	ToleranceMinutes int           `yaml:"tolerance_minutes" env:"FACILITY_TOLERANCE_MINUTES" env-default:"15"          validate:"min=0"`
	PhoneRegion      string        `yaml:"phone_region"      env:"FACILITY_PHONE_REGION"      env-default:"MX"          validate:"required,len=2"`
}

type MailConfig struct {
	Host     string        `yaml:"host"      env:"SMTP_HOST"`
	Port     int           `yaml:"port"      env:"SMTP_PORT"      env-default:"587"           validate:"min=1,max=65535"`
	Username string        `yaml:"username"  env:"SMTP_USERNAME"`
	Password string        `yaml:"password"  env:"SMTP_PASSWORD"`
	From     string        `yaml:"from"      env:"SMTP_FROM"`
	FromName string        `yaml:"from_name" env:"SMTP_FROM_NAME"`
	TLS      string        `yaml:"tls"       env:"SMTP_TLS"       env-default:"opportunistic" validate:"oneof=mandatory opportunistic none"`
	SSL      bool          `yaml:"ssl"       env:"SMTP_SSL"`
	Timeout  time.Duration `yaml:"timeout"   env:"SMTP_TIMEOUT"   env-default:"10s"           validate:"gt=0"`
}

type TelegramConfig struct {
	BotToken        string `yaml:"bot_token"         env:"TELEGRAM_BOT_TOKEN"         env-default:""`
	ReceptionChatID int64  `yaml:"reception_chat_id" env:"TELEGRAM_RECEPTION_CHAT_ID"`
}

type RabbitMQConfig struct {
	URL      string `yaml:"url"      env:"RABBITMQ_URL"`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"sacrepadel.bookings"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"   validate:"min=0"`
	CourtTTL time.Duration `yaml:"court_ttl" env:"REDIS_COURT_TTL" env-default:"5m"  validate:"gt=0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
