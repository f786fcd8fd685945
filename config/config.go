package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Domain   string `envconfig:"DOMAIN"`
	Prefix   string `envconfig:"PREFIX"`
	Mode     Mode   `envconfig:"MODE"`
	Storage  Storage
	Mysql    Mysql
	Redis    Redis
	JWT      JWT
	Log      Log `mapstructure:"Log"`
	Registry Registry
	S3       S3
	Sentry   Sentry
}

// Storage configures the local upload directory and the public URL
// uploads are served from.
type Storage struct {
	Home    string `envconfig:"STORAGE_HOME" mapstructure:"home"`
	BaseURL string `envconfig:"STORAGE_BASE_URL" mapstructure:"base_url"`
	MaxSize int64  `envconfig:"STORAGE_MAX_SIZE" mapstructure:"max_size"` // bytes, 0 means 10 MiB
}

type S3 struct {
	Endpoint        string `mapstructure:"endpoint"`
	BaseURL         string `mapstructure:"base_url"`
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	AccessKey       string `mapstructure:"access_key"`
	SecretAccessKey string `mapstructure:"secret_key"`
	Prefix          string `mapstructure:"prefix"`
	UsePathStyle    bool   `mapstructure:"path_style"`
}

// Registry configures the upstream school-registry (NPSN) lookup.
type Registry struct {
	BaseURL  string `envconfig:"REGISTRY_BASE_URL" mapstructure:"base_url"`
	CacheTTL int64  `envconfig:"REGISTRY_CACHE_TTL" mapstructure:"cache_ttl"` // seconds
}

type Mysql struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
}

type Redis struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWT struct {
	AccessSecret string `envconfig:"ACCESS_SECRET"`
	AccessExpire int64  `envconfig:"ACCESS_EXPIRE"`
}

type Sentry struct {
	Dsn string `envconfig:"SENTRY_DSN" mapstructure:"dsn"`
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"`
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`
}
