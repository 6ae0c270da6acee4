package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// 数据库配置
	DBDriver          string        `mapstructure:"DB_DRIVER"`
	DBHost            string        `mapstructure:"DB_HOST"`
	DBPort            string        `mapstructure:"DB_PORT"`
	DBUser            string        `mapstructure:"DB_USER"`
	DBPassword        string        `mapstructure:"DB_PASSWORD"`
	DBName            string        `mapstructure:"DB_NAME"`
	DBSSLMode         string        `mapstructure:"DB_SSLMODE"`
	DBPath            string        `mapstructure:"DB_PATH"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	DBAutoMigrate     bool          `mapstructure:"DB_AUTO_MIGRATE"`

	// Redis配置，REDIS_HOST 为空时不启用
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	RedisChannel  string `mapstructure:"REDIS_CHANNEL"`

	// Kafka配置，KAFKA_BROKERS 逗号分隔
	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic   string `mapstructure:"KAFKA_TOPIC"`

	// AWS配置，凭证和区域走 SDK 默认链
	AWSSQSQueue string `mapstructure:"AWS_SQS_QUEUE"`
	AWSS3Bucket string `mapstructure:"AWS_S3_BUCKET"`
	AWSEndpoint string `mapstructure:"AWS_ENDPOINT"`

	InternalAuthToken string `mapstructure:"INTERNAL_AUTH_TOKEN"`
	CORSAllowOrigins  string `mapstructure:"CORS_ALLOW_ORIGINS"`
	LogDir            string `mapstructure:"LOG_DIR"`

	// 表单必填字段，逗号分隔
	FormRequiredFields string `mapstructure:"FORM_REQUIRED_FIELDS"`
}

var defaults = map[string]interface{}{
	"ENVIRONMENT":          "development",
	"SERVER_PORT":          "8080",
	"DB_DRIVER":            "sqlite",
	"DB_HOST":              "localhost",
	"DB_PORT":              "",
	"DB_USER":              "",
	"DB_PASSWORD":          "",
	"DB_NAME":              "dailyreview",
	"DB_SSLMODE":           "disable",
	"DB_PATH":              "dailyreview.db",
	"DB_MAX_IDLE_CONNS":    10,
	"DB_MAX_OPEN_CONNS":    100,
	"DB_CONN_MAX_LIFETIME": time.Hour,
	"DB_AUTO_MIGRATE":      true,
	"REDIS_HOST":           "",
	"REDIS_PORT":           "6379",
	"REDIS_PASSWORD":       "",
	"REDIS_DB":             0,
	"REDIS_CHANNEL":        "formdata.created",
	"KAFKA_BROKERS":        "",
	"KAFKA_TOPIC":          "formdata",
	"AWS_SQS_QUEUE":        "",
	"AWS_S3_BUCKET":        "",
	"AWS_ENDPOINT":         "",
	"INTERNAL_AUTH_TOKEN":  "",
	"CORS_ALLOW_ORIGINS":   "*",
	"LOG_DIR":              "logs",
	"FORM_REQUIRED_FIELDS": "name,achievements,goals",
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// AutomaticEnv 只覆盖已知的 key，所以每个 key 都要有默认值
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = v.Unmarshal(&config)
	return
}

// IsProduction 是否为生产环境
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetDBConnString 返回当前驱动的数据库连接字符串
func (c *Config) GetDBConnString() (string, error) {
	switch c.DBDriver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser, c.DBPassword, c.DBHost, orDefault(c.DBPort, "3306"), c.DBName), nil
	case "postgres":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, orDefault(c.DBPort, "5432"), c.DBSSLMode), nil
	case "sqlite":
		return c.DBPath, nil
	default:
		return "", fmt.Errorf("unknown DB_DRIVER: %q", c.DBDriver)
	}
}

// GetRedisConnString 返回Redis连接字符串
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// GetKafkaBrokers 返回 Kafka broker 列表
func (c *Config) GetKafkaBrokers() []string {
	return SplitList(c.KafkaBrokers)
}

// GetCORSAllowOrigins 返回允许的跨域来源
func (c *Config) GetCORSAllowOrigins() []string {
	origins := SplitList(c.CORSAllowOrigins)
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// GetFormRequiredFields 返回表单必填字段
func (c *Config) GetFormRequiredFields() []string {
	return SplitList(c.FormRequiredFields)
}

// SplitList 按逗号拆分并去掉空白项
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
