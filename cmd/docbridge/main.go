package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/docbridge/docbridge/pkg/config"
	"github.com/docbridge/docbridge/pkg/connector/core"
	"github.com/docbridge/docbridge/pkg/connector/registry"
	"github.com/docbridge/docbridge/pkg/logger"

	// Import all available object factories to register them
	_ "github.com/docbridge/docbridge/pkg/connector/factories/offline"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	var logLevel string

	root := &cobra.Command{
		Use:   "docbridge",
		Short: "DocBridge - Content engine indexing connector toolkit",
		Long: `DocBridge validates connector configuration for indexing enterprise content
into a search feed. It resolves display URL templates against the engine URL,
probes host reachability, and reports exactly which setting is broken.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{
				Level:    logLevel,
				Encoding: "console",
			})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	// Version command
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("DocBridge v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	// Factories command to show available object factories
	root.AddCommand(&cobra.Command{
		Use:   "factories",
		Short: "List registered object factories",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Registered object factories:")
			for _, name := range registry.List() {
				info, err := registry.GetFactoryInfo(name)
				if err != nil {
					fmt.Printf("  - %s\n", name)
					continue
				}
				fmt.Printf("  - %s (%s): %s\n", info.Name, info.Version, info.Description)
			}
		},
	})

	// Validate command
	var validateConfig, validateDecoder string
	var validateTimeout time.Duration

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate connector configuration",
		Long: `Validate loads configuration from the file, the environment, and built-in
defaults, then checks every field eagerly. The display URL template is
resolved against the engine URL and both hosts are probed; unreachable
hosts are warnings, not errors.

Example:
  docbridge validate --config docbridge.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.With(zap.String("component", "docbridge-cli"))
			log.Info("validating configuration", zap.String("config", validateConfig))

			opts, err := loadOptions(validateConfig, validateDecoder, validateTimeout)
			if err != nil {
				return err
			}

			fmt.Printf("configuration valid: engine %s, object store %s, factory %s\n",
				opts.ContentEngineURL(), opts.ObjectStoreName(), opts.Snapshot().ObjectFactory)
			return nil
		},
	}
	addLoadFlags(validateCmd, &validateConfig, &validateDecoder, &validateTimeout)
	root.AddCommand(validateCmd)

	// Resolve command
	var resolveConfig, resolveDecoder, resolveOutput string
	var resolveTimeout time.Duration

	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved configuration",
		Long: `Resolve validates the configuration and prints the result with defaults
applied, lists normalized, and the display URL template made absolute.
The password is redacted.

Example:
  docbridge resolve --config docbridge.yaml --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(resolveConfig, resolveDecoder, resolveTimeout)
			if err != nil {
				return err
			}
			return printSnapshot(opts.Snapshot(), resolveOutput)
		},
	}
	addLoadFlags(resolveCmd, &resolveConfig, &resolveDecoder, &resolveTimeout)
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "yaml", "Output format (json, yaml)")
	root.AddCommand(resolveCmd)

	// Display URL command
	var displayConfig, displayDecoder, docID, vsID string
	var displayTimeout time.Duration

	displayCmd := &cobra.Command{
		Use:   "display-url",
		Short: "Build the display URL for a document",
		Long: `Display-url validates the configuration, then fills the resolved display
URL template with the given document and version series identifiers,
percent-escaping both.

Example:
  docbridge display-url -c docbridge.yaml \
    --doc-id "{D1F2A3B4-0000-0000-0000-000000000001}" \
    --vs-id "{3021A39E-B264-41A2-8A33-0F4E90F0C4D2}"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(displayConfig, displayDecoder, displayTimeout)
			if err != nil {
				return err
			}
			fmt.Println(opts.DisplayURL(docID, vsID).String())
			return nil
		},
	}
	addLoadFlags(displayCmd, &displayConfig, &displayDecoder, &displayTimeout)
	displayCmd.Flags().StringVar(&docID, "doc-id", "", "Document id (required)")
	displayCmd.Flags().StringVar(&vsID, "vs-id", "", "Version series id (required)")
	_ = displayCmd.MarkFlagRequired("doc-id")
	_ = displayCmd.MarkFlagRequired("vs-id")
	root.AddCommand(displayCmd)

	err := root.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// addLoadFlags registers the flags shared by every command that loads
// and validates configuration.
func addLoadFlags(cmd *cobra.Command, configFile, decoderName *string, timeout *time.Duration) {
	cmd.Flags().StringVarP(configFile, "config", "c", "", "Path to configuration file (yaml, json, toml, properties)")
	cmd.Flags().StringVar(decoderName, "password-decoder", "plain", "Password decoder (plain, base64)")
	cmd.Flags().DurationVar(timeout, "timeout", 30*time.Second, "Validation timeout including host probes")
}

// loadOptions loads raw configuration values and validates them.
func loadOptions(path, decoderName string, timeout time.Duration) (*config.Options, error) {
	decoder, err := decoderFor(decoderName)
	if err != nil {
		return nil, err
	}

	values, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	opts, err := config.NewOptions(ctx, values, decoder)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return opts, nil
}

// decoderFor maps a flag value to a sensitive value decoder.
func decoderFor(name string) (core.SensitiveValueDecoder, error) {
	switch name {
	case "plain":
		return core.PlainTextDecoder{}, nil
	case "base64":
		return core.Base64Decoder{}, nil
	default:
		return nil, fmt.Errorf("unknown password decoder %q (expected plain or base64)", name)
	}
}

// printSnapshot encodes the resolved configuration in the requested format.
func printSnapshot(snap config.Snapshot, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(snap)
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unknown output format %q (expected json or yaml)", format)
	}
	return nil
}
