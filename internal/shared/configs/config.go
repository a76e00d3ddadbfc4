package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Dataset     DatasetConfig     `mapstructure:"dataset" validate:"required"`
	Vendors     VendorsConfig     `mapstructure:"vendors"`
	Scan        ScanConfig        `mapstructure:"scan"`
	Reports     ReportsConfig     `mapstructure:"reports"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	RequestTimeout    int `mapstructure:"request_timeout" validate:"min=0"`              // seconds per query, 0 = none
	ShutdownTimeout   int `mapstructure:"shutdown_timeout" validate:"required,min=1"`    // seconds
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json console"`
}

// FileStorageConfig selects where datasets and report artifacts live: a local directory or a
// gocloud.dev bucket URL (file://, s3://, gs://, mem://).
type FileStorageConfig struct {
	RootDir   string `mapstructure:"root_dir" validate:"required_without=BucketURL"`
	BucketURL string `mapstructure:"bucket_url" validate:"required_without=RootDir"`
}

// DatasetConfig holds the storage keys of the query inputs.
type DatasetConfig struct {
	LogKey          string `mapstructure:"log_key" validate:"required"`
	AccessPointsKey string `mapstructure:"access_points_key" validate:"required"`
}

// VendorsConfig selects the vendor table. An empty registry key uses the compiled-in snapshot.
type VendorsConfig struct {
	RegistryKey string `mapstructure:"registry_key"`
}

// ScanConfig sizes the parallel byte-totals fold. Zero values pick defaults.
type ScanConfig struct {
	Workers     int `mapstructure:"workers" validate:"min=0,max=256"`
	ChunkBytes  int `mapstructure:"chunk_bytes" validate:"omitempty,min=64"`
	QueueBuffer int `mapstructure:"queue_buffer" validate:"min=0"`
}

// ReportsConfig holds report artifact and chart settings.
type ReportsConfig struct {
	Prefix       string `mapstructure:"prefix"`
	ChartWidth   int    `mapstructure:"chart_width" validate:"omitempty,min=480"`
	ChartHeight  int    `mapstructure:"chart_height" validate:"omitempty,min=200"`
	ChartCaption string `mapstructure:"chart_caption"`
}
