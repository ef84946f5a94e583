package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppCfg struct {
	Name             string
	Env              string
	Host             string
	Port             int
	BodyLimitMB      int
	SocketTimeoutSec int
}

type LogCfg struct {
	Level string
}

// DBCfg configures the primary store. Reads are spread over ReplicaDSNs when set.
type DBCfg struct {
	DSN         string
	ReplicaDSNs []string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

type MQCfg struct {
	URL      string
	Exchange string
}

type S3Cfg struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UsePathStyle  bool
	SSE           string
	PublicBaseURL string
}

// UploadCfg selects where uploaded files end up. Driver is "local" or "s3".
type UploadCfg struct {
	Driver        string
	Dir           string
	PublicBaseURL string
	MaxFileMB     int
	MaxImageWidth int
}

type AuthCfg struct {
	Enabled           bool
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	JWTIssuer         string
	TokenTTLMin       int
}

type CorsCfg struct {
	Origins []string
}

type NotifyCfg struct {
	WebhookURL string
}

type TelemetryCfg struct {
	Enabled      bool
	OtlpEndpoint string
	SampleRatio  float64
}

type Config struct {
	App       AppCfg
	Log       LogCfg
	Database  DBCfg
	Redis     RedisCfg
	RabbitMQ  MQCfg
	S3        S3Cfg
	Upload    UploadCfg
	Auth      AuthCfg
	Cors      CorsCfg
	Notify    NotifyCfg
	Telemetry TelemetryCfg
}

func Load() (*Config, error) {
	// .env is optional; real environment variables always win
	_ = godotenv.Load()

	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	base.AutomaticEnv()
	base.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	base.SetEnvPrefix("APP") // e.g. APP_APP_PORT -> app.port

	setDefaults(base)

	if err := base.ReadInConfig(); err == nil {
		// expand ${ENV} once before parsing
		path := base.ConfigFileUsed()
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		expanded := os.ExpandEnv(string(raw))

		v := viper.New()
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, err
		}
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.SetEnvPrefix("APP")
		setDefaults(v)

		cfg := new(Config)
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// no file: env + defaults only
	cfg := new(Config)
	if err := base.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "vimco-api")
	v.SetDefault("app.env", "release")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.bodyLimitMB", 50)
	v.SetDefault("app.socketTimeoutSec", 300)
	v.SetDefault("log.level", "info")
	v.SetDefault("database.maxOpen", 20)
	v.SetDefault("database.maxIdle", 5)
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("rabbitmq.exchange", "vimco.events")
	v.SetDefault("s3.region", "auto")
	v.SetDefault("s3.usePathStyle", true)
	v.SetDefault("upload.driver", "local")
	v.SetDefault("upload.dir", "images")
	v.SetDefault("upload.maxFileMB", 10)
	v.SetDefault("upload.maxImageWidth", 1920)
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.adminEmail", "admin@gmail.com")
	v.SetDefault("auth.jwtIssuer", "vimco-api")
	v.SetDefault("auth.tokenTTLMin", 720)
	v.SetDefault("cors.origins", []string{
		"https://vimco-solar.vercel.app",
		"https://bureau.made4ever.in",
		"https://made4ever.in",
		"http://localhost:8080",
	})
	v.SetDefault("telemetry.sampleRatio", 1.0)
}
