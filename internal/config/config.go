package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultOutputFile  = "tax_invoice_data.xlsx"
	DefaultInputSubdir = "input"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
	DefaultLogFile     = "tds_extraction.log"

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the extraction tool.
type Config struct {
	// Paths
	InputDir   string
	OutputFile string

	// Behavior
	Debug       bool
	Workers     int
	MaxFileSize int64

	// Application
	Version string
}

// DefaultConfig returns a configuration with sensible defaults. The input
// directory defaults to an "input" subdirectory next to the executable so
// the tool works out of the box when dropped into a folder of receipts.
func DefaultConfig() *Config {
	return &Config{
		InputDir:    filepath.Join(executableDir(), DefaultInputSubdir),
		OutputFile:  DefaultOutputFile,
		Debug:       false,
		Workers:     1,
		MaxFileSize: DefaultMaxFileSize,
		Version:     "1.0.0",
	}
}

// executableDir returns the directory holding the running binary, falling
// back to the working directory.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		if wd, werr := os.Getwd(); werr == nil {
			return wd
		}
		return "."
	}
	return filepath.Dir(exe)
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if expandedPath, err := filepath.Abs(cfg.InputDir); err == nil {
		cfg.InputDir = expandedPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("TDS")
	viper.AutomaticEnv()

	viper.SetDefault("input", cfg.InputDir)
	viper.SetDefault("output", cfg.OutputFile)
	viper.SetDefault("debug", cfg.Debug)
	viper.SetDefault("workers", cfg.Workers)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.StringP("input", "i", cfg.InputDir, "Directory containing the PDF files to process")
	pflag.StringP("output", "o", cfg.OutputFile, "Path of the XLSX file to write")
	pflag.BoolP("debug", "d", cfg.Debug, "Enable debug logging and per-document sidecar dumps")
	pflag.Int("workers", cfg.Workers, "Number of documents processed concurrently")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("input", pflag.Lookup("input"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("debug", pflag.Lookup("debug"))
	_ = viper.BindPFlag("workers", pflag.Lookup("workers"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nTDS Extract - pulls provisional-receipt fields out of TDS PDFs into a spreadsheet\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # process ./input into %s\n", os.Args[0], DefaultOutputFile)
		fmt.Fprintf(os.Stderr, "  %s -i /path/to/pdfs -o report.xlsx  # custom locations\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --debug                          # sidecar dumps + verbose log\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  TDS_INPUT        Input directory\n")
		fmt.Fprintf(os.Stderr, "  TDS_OUTPUT      Output file path\n")
		fmt.Fprintf(os.Stderr, "  TDS_DEBUG       Enable debug mode\n")
		fmt.Fprintf(os.Stderr, "  TDS_WORKERS     Concurrent documents\n")
		fmt.Fprintf(os.Stderr, "  TDS_MAXFILESIZE Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.InputDir = viper.GetString("input")
	cfg.OutputFile = viper.GetString("output")
	cfg.Debug = viper.GetBool("debug")
	cfg.Workers = viper.GetInt("workers")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks the configuration, creating the input directory when it
// does not exist yet. On first creation any PDFs sitting beside the
// executable are copied in, so dropping the binary into a folder of
// receipts just works.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("input directory cannot be empty")
	}
	if c.OutputFile == "" {
		return errors.New("output file cannot be empty")
	}
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}
	if c.Workers < 1 || c.Workers > 4*runtime.NumCPU() {
		return fmt.Errorf("workers must be between 1 and %d", 4*runtime.NumCPU())
	}

	if _, err := os.Stat(c.InputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(c.InputDir, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create input directory %s: %w", c.InputDir, err)
		}
		if err := bootstrapInputDir(c.InputDir); err != nil {
			return fmt.Errorf("cannot bootstrap input directory %s: %w", c.InputDir, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access input directory %s: %w", c.InputDir, err)
	}

	return nil
}

// bootstrapInputDir copies any PDFs next to the freshly created input
// directory into it.
func bootstrapInputDir(inputDir string) error {
	parent := filepath.Dir(inputDir)
	entries, err := os.ReadDir(parent)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".pdf" {
			continue
		}
		src := filepath.Join(parent, entry.Name())
		dst := filepath.Join(inputDir, entry.Name())
		data, err := os.ReadFile(src)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{InputDir: %s, OutputFile: %s, Debug: %t, Workers: %d, MaxFileSize: %d}",
		c.InputDir, c.OutputFile, c.Debug, c.Workers, c.MaxFileSize)
}
