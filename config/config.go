package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Notify   NotifyConfig   `yaml:"notify"`
	Paystack PaystackConfig `yaml:"paystack"`
	Images   ImagesConfig   `yaml:"images"`
	Services ServicesConfig `yaml:"services"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

type RedisConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type KafkaConfig struct {
	Broker  string `yaml:"broker"`
	Topic   string `yaml:"topic"`
	GroupID string `yaml:"group_id"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// NotifyConfig controls the QR deep links and where QR images are staged.
type NotifyConfig struct {
	BaseURL string `yaml:"base_url"`
	TempDir string `yaml:"temp_dir"`
}

type PaystackConfig struct {
	SecretKey string        `yaml:"secret_key"`
	MarkerTTL time.Duration `yaml:"marker_ttl"`
}

type ImagesConfig struct {
	CloudName   string `yaml:"cloud_name"`
	APIKey      string `yaml:"api_key"`
	APISecret   string `yaml:"api_secret"`
	Folder      string `yaml:"folder"`
	UploadDir   string `yaml:"upload_dir"`
	UploadsPath string `yaml:"uploads_path"`
}

type ServicesConfig struct {
	OrderSvcURL string `yaml:"order_svc_url"`
	StatsSvcURL string `yaml:"stats_svc_url"`
}

type TracingConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	Stdout       bool   `yaml:"stdout"`
}

func Default() *Config {
	return &Config{
		HTTP:     HTTPConfig{},
		Database: DatabaseConfig{Host: "localhost", Port: 5432, User: "postgres", Name: "feastly", SSLMode: "disable"},
		Redis:    RedisConfig{Host: "localhost", Port: 6379},
		Kafka:    KafkaConfig{Broker: "localhost:9092", Topic: "order-events", GroupID: "stats-svc"},
		SMTP:     SMTPConfig{Host: "smtp.gmail.com", Port: 587},
		Notify:   NotifyConfig{BaseURL: "https://feastly.flutterflow.app", TempDir: os.TempDir()},
		Paystack: PaystackConfig{MarkerTTL: 24 * time.Hour},
		Images:   ImagesConfig{Folder: "feastly", UploadDir: "./uploads", UploadsPath: "/uploads/"},
		Services: ServicesConfig{OrderSvcURL: "http://localhost:8081", StatsSvcURL: "http://localhost:8083"},
	}
}

// Load reads the optional YAML file at path on top of Default and then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.HTTP.Addr, "HTTP_ADDR")

	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.SSLMode, "DB_SSLMODE")
	if err := setInt(&c.Database.Port, "DB_PORT"); err != nil {
		return err
	}

	setString(&c.Redis.Host, "REDIS_HOST")
	if err := setInt(&c.Redis.Port, "REDIS_PORT"); err != nil {
		return err
	}

	setString(&c.Kafka.Broker, "KAFKA_BROKER")
	setString(&c.Kafka.Topic, "KAFKA_TOPIC")
	setString(&c.Kafka.GroupID, "KAFKA_GROUP_ID")

	setString(&c.SMTP.Host, "SMTP_HOST")
	setString(&c.SMTP.User, "EMAIL_USER")
	setString(&c.SMTP.Password, "EMAIL_PASS")
	setString(&c.SMTP.From, "EMAIL_FROM")
	if err := setInt(&c.SMTP.Port, "SMTP_PORT"); err != nil {
		return err
	}
	if c.SMTP.From == "" {
		c.SMTP.From = c.SMTP.User
	}

	setString(&c.Notify.BaseURL, "QR_BASE_URL")
	setString(&c.Notify.TempDir, "QR_TEMP_DIR")

	setString(&c.Paystack.SecretKey, "PAYSTACK_SECRET_KEY")
	if v := os.Getenv("PAYSTACK_MARKER_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("PAYSTACK_MARKER_TTL: %w", err)
		}
		c.Paystack.MarkerTTL = ttl
	}

	setString(&c.Images.CloudName, "CLOUDINARY_CLOUD_NAME")
	setString(&c.Images.APIKey, "CLOUDINARY_API_KEY")
	setString(&c.Images.APISecret, "CLOUDINARY_API_SECRET")
	setString(&c.Images.UploadDir, "UPLOAD_DIR")

	setString(&c.Services.OrderSvcURL, "ORDER_SVC_URL")
	setString(&c.Services.StatsSvcURL, "STATS_SVC_URL")

	setString(&c.Tracing.OTLPEndpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")
	if v := os.Getenv("TRACING_STDOUT"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TRACING_STDOUT: %w", err)
		}
		c.Tracing.Stdout = on
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name, c.Database.SSLMode)
}

func (c *Config) RedisAddr() string {
	return c.Redis.Host + ":" + strconv.Itoa(c.Redis.Port)
}

func MustInitPostgres(cfg *Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg *Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Kafka.Broker},
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
}

func NewKafkaWriter(cfg *Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Kafka.Broker),
		Topic:                  cfg.Kafka.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}
