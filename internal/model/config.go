package model

import "time"

// Config is the full application configuration. Values are layered from
// defaults, the config file, TANIT_* environment variables, and flags.
type Config struct {
	Lexicon     LexiconConfig     `yaml:"lexicon" mapstructure:"lexicon"`
	Tagger      TaggerConfig      `yaml:"tagger" mapstructure:"tagger"`
	Mongo       MongoConfig       `yaml:"mongo" mapstructure:"mongo"`
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`

	// MinTextLength is the minimum usable document length in runes.
	// Shorter documents are skipped before reaching the resolvers.
	MinTextLength int `yaml:"min_text_length" mapstructure:"min_text_length"`
}

// LexiconConfig locates the three lookup-table files.
type LexiconConfig struct {
	LabelsPath        string `yaml:"labels_path" mapstructure:"labels_path"`
	LocationTypesPath string `yaml:"location_types_path" mapstructure:"location_types_path"`
	OrgTypesPath      string `yaml:"org_types_path" mapstructure:"org_types_path"`
}

// TaggerConfig configures the external span tagger.
type TaggerConfig struct {
	// Provider name: "http" or "openai".
	Provider string `yaml:"provider" mapstructure:"provider"`

	// Endpoint of the remote NER service (http provider).
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// Model name for the openai provider.
	Model string `yaml:"model" mapstructure:"model"`

	// APIKey for the openai provider.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`

	Language string        `yaml:"language" mapstructure:"language"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Rate limiting toward the tagger endpoint.
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// MongoConfig configures the article store.
type MongoConfig struct {
	URI              string `yaml:"uri" mapstructure:"uri"`
	Database         string `yaml:"database" mapstructure:"database"`
	SourceCollection string `yaml:"source_collection" mapstructure:"source_collection"`
	TargetCollection string `yaml:"target_collection" mapstructure:"target_collection"`
	BatchSize        int    `yaml:"batch_size" mapstructure:"batch_size"`
}

// HTTPConfig configures article fetching.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// CacheConfig configures the extraction result cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig configures batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
	Dir     string `yaml:"dir" mapstructure:"dir"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Lexicon: LexiconConfig{
			LabelsPath:        "config/label_mapping.json",
			LocationTypesPath: "config/types_city_country.json",
			OrgTypesPath:      "config/types_org.json",
		},
		Tagger: TaggerConfig{
			Provider:          "http",
			Endpoint:          "http://localhost:8080/entities",
			Language:          "az",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 5,
			BurstSize:         5,
		},
		Mongo: MongoConfig{
			URI:              "mongodb://localhost:27017",
			Database:         "az_articles",
			SourceCollection: "articles",
			TargetCollection: "articles_with_ner",
			BatchSize:        100,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Tanit/0.1 (+https://github.com/azlabs/tanit)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".tanit-cache",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Dir: "./tanit-reports",
		},
		MinTextLength: 50,
	}
}
