package config

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/redis/go-redis/v9"
)

// Config - Global variable to export
var Config AppConfig

// AppConfig defines
type AppConfig struct {
	Server        ServerConfig        `koanf:"server"`
	Database      DatabaseConfig      `koanf:"database"`
	Cache         CacheConfig         `koanf:"cache"`
	Temporal      TemporalConfig      `koanf:"temporal"`
	OTELCollector OTELCollectorConfig `koanf:"otelcollector"`
	Minio         MinioConfig         `koanf:"minio"`
	GCS           GCSConfig           `koanf:"gcs"`
	Ingest        IngestConfig        `koanf:"ingest"`
	Embedding     EmbeddingConfig     `koanf:"embedding"`
	VectorIndex   VectorIndexConfig   `koanf:"vectorindex"`
	Worker        WorkerConfig        `koanf:"worker"`
}

// ServerConfig defines HTTP server configurations
type ServerConfig struct {
	PublicPort int `koanf:"publicport" validate:"required"`
	HTTPS      struct {
		Cert string `koanf:"cert"`
		Key  string `koanf:"key"`
	}
	Debug bool `koanf:"debug"`
	// WebhookSecret signs upload-complete events. Empty disables the check,
	// which is only meant for local development.
	WebhookSecret string `koanf:"webhooksecret"`
	// Executor selects how pipeline runs are executed: "local" runs them in
	// the worker pool of cmd/main, "temporal" starts a workflow handled by
	// cmd/worker.
	Executor string `koanf:"executor" validate:"oneof=local temporal"`
}

// DatabaseConfig related to database
type DatabaseConfig struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Name     string `koanf:"name"`
	Version  uint   `koanf:"version"`
	TimeZone string `koanf:"timezone"`
	Pool     struct {
		IdleConnections int           `koanf:"idleconnections"`
		MaxConnections  int           `koanf:"maxconnections"`
		ConnLifeTime    time.Duration `koanf:"connlifetime"`
	}
}

// CacheConfig related to Redis
type CacheConfig struct {
	Redis struct {
		RedisOptions redis.Options `koanf:"redisoptions"`
	}
}

// TemporalConfig is the Temporal client configuration.
type TemporalConfig struct {
	HostPort  string `koanf:"hostport"`
	Namespace string `koanf:"namespace"`
}

// OTELCollectorConfig related to OTEL collector
type OTELCollectorConfig struct {
	Enable bool   `koanf:"enable"`
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
}

// MinioConfig is the MinIO configuration used to fetch s3:// and minio://
// locations.
type MinioConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Secure   bool   `koanf:"secure"`
	Region   string `koanf:"region"`
}

// GCSConfig defines the configuration for Google Cloud Storage, used to fetch
// gs:// locations.
type GCSConfig struct {
	ProjectID string `koanf:"projectid"`
	SAKey     string `koanf:"sakey"` // JSON string of service account key
}

// IngestConfig holds the pipeline settings.
type IngestConfig struct {
	// LocationBaseURL is prefixed to the uploaded object key to build the
	// location the bytes are fetched from.
	LocationBaseURL string `koanf:"locationbaseurl" validate:"required"`
	// MaxFileSize is the largest payload the fetcher accepts, in bytes.
	MaxFileSize int64 `koanf:"maxfilesize"`
	// FetchTimeout bounds a single fetch request.
	FetchTimeout time.Duration `koanf:"fetchtimeout"`
	// StepTimeout bounds every pipeline step. Zero disables it.
	StepTimeout time.Duration `koanf:"steptimeout"`
}

// EmbeddingConfig selects and configures the embedding provider.
type EmbeddingConfig struct {
	Provider       string       `koanf:"provider" validate:"oneof=openai gemini"`
	Dimensionality int          `koanf:"dimensionality" validate:"gt=0"`
	BatchSize      int          `koanf:"batchsize"`
	MaxBatchTokens int          `koanf:"maxbatchtokens"`
	Concurrency    int          `koanf:"concurrency"`
	OpenAI         OpenAIConfig `koanf:"openai"`
	Gemini         GeminiConfig `koanf:"gemini"`
}

// OpenAIConfig defines the configuration for OpenAI
type OpenAIConfig struct {
	APIKey  string `koanf:"apikey"`
	BaseURL string `koanf:"baseurl"`
	Model   string `koanf:"model"`
}

// GeminiConfig defines the configuration for Gemini AI
type GeminiConfig struct {
	APIKey string `koanf:"apikey"`
	Model  string `koanf:"model"`
}

// VectorIndexConfig selects and configures the vector index.
type VectorIndexConfig struct {
	Provider string         `koanf:"provider" validate:"oneof=milvus weaviate"`
	Milvus   MilvusConfig   `koanf:"milvus"`
	Weaviate WeaviateConfig `koanf:"weaviate"`
}

// MilvusConfig is the milvus configuration.
type MilvusConfig struct {
	Host       string `koanf:"host"`
	Port       string `koanf:"port"`
	Collection string `koanf:"collection"`
}

// WeaviateConfig is the weaviate configuration.
type WeaviateConfig struct {
	Host   string `koanf:"host"`
	Scheme string `koanf:"scheme"`
	APIKey string `koanf:"apikey"`
	Class  string `koanf:"class"`
}

// WorkerConfig configures the local executor.
type WorkerConfig struct {
	Pool struct {
		Size int `koanf:"size"`
	} `koanf:"pool"`
	Lease struct {
		TTL    time.Duration `koanf:"ttl"`
		Period time.Duration `koanf:"period"`
	} `koanf:"lease"`
	Sweeper struct {
		Period     time.Duration `koanf:"period"`
		StaleAfter time.Duration `koanf:"staleafter"`
		BatchSize  int           `koanf:"batchsize"`
	} `koanf:"sweeper"`
}

// Init - Assign global config to decoded config struct
func Init(filePath string) error {
	k := koanf.New(".")
	parser := yaml.Parser()

	if err := k.Load(confmap.Provider(map[string]any{
		"server.executor":               "local",
		"ingest.maxfilesize":            4 << 20,
		"ingest.fetchtimeout":           "30s",
		"ingest.steptimeout":            "5m",
		"embedding.provider":            "openai",
		"embedding.dimensionality":      1536,
		"embedding.batchsize":           96,
		"embedding.maxbatchtokens":      250000,
		"embedding.concurrency":         4,
		"vectorindex.provider":          "milvus",
		"vectorindex.milvus.collection": "talkifydocs",
		"vectorindex.weaviate.class":    "Page",
		"vectorindex.weaviate.scheme":   "http",
		"worker.pool.size":              8,
		"worker.lease.ttl":              "45s",
		"worker.lease.period":           "15s",
		"worker.sweeper.period":         "1m",
		"worker.sweeper.staleafter":     "15m",
		"worker.sweeper.batchsize":      100,
		"temporal.namespace":            "default",
	}, "."), nil); err != nil {
		log.Fatal(err.Error())
	}

	if err := k.Load(file.Provider(filePath), parser); err != nil {
		log.Fatal(err.Error())
	}

	if err := k.Load(env.ProviderWithValue("CFG_", ".", func(s string, v string) (string, any) {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "CFG_")), "_", ".")
		if strings.Contains(v, ",") {
			return key, strings.Split(strings.TrimSpace(v), ",")
		}
		return key, v
	}), nil); err != nil {
		return err
	}

	if err := k.Unmarshal("", &Config); err != nil {
		return err
	}

	return ValidateConfig(&Config)
}

// ValidateConfig is for custom validation rules for the configuration
func ValidateConfig(cfg *AppConfig) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return err
	}
	return nil
}

var defaultConfigPath = "config/config.yaml"

// ParseConfigFlag allows clients to specify the relative path to the file from
// which the configuration will be loaded.
func ParseConfigFlag() string {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := fs.String("file", defaultConfigPath, "configuration file")
	_ = fs.Parse(os.Args[1:])

	return *configPath
}
