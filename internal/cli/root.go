// Package cli provides the command-line interface for the astrology application.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"vedic-astro/internal/chart"
	"vedic-astro/internal/config"
	"vedic-astro/internal/ephemeris"
	"vedic-astro/internal/interpret"
	"vedic-astro/internal/logging"
	"vedic-astro/internal/store"
	"vedic-astro/internal/yoga"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-08-26"
)

// App holds the application dependencies.
type App struct {
	Config      *config.Config
	Logger      zerolog.Logger
	Assembler   *chart.Assembler
	Detector    *yoga.Detector
	Store       store.SnapshotStore
	Interpreter *interpret.Interpreter
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config:    cfg,
		Logger:    logger,
		Assembler: chart.NewAssembler(ephemeris.NewAnalyticProvider()),
		Detector:  yoga.NewDetector(),
	}

	// Initialize SQLite snapshot store
	snapStore, err := store.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize snapshot store, save/load unavailable")
	} else {
		app.Store = snapStore
		logger.Debug().Str("path", cfg.Storage.DatabasePath).Msg("SQLite snapshot store initialized")
	}

	// Initialize LLM-backed interpreter if an OpenAI API key is available
	var llm interpret.LLMClient
	if cfg.HasOpenAIKey() {
		llm = interpret.NewOpenAIClient(cfg.Credentials.OpenAI.APIKey, cfg.Interpreter.Model,
			cfg.Interpreter.Temperature, cfg.Interpreter.MaxTokens)
		logger.Debug().Str("model", cfg.Interpreter.Model).Msg("OpenAI LLM client initialized")
	}
	app.Interpreter = interpret.NewInterpreter(llm)

	rootCmd := &cobra.Command{
		Use:   "astro",
		Short: "Vedic Astro - sidereal chart computation and analysis CLI",
		Long: `Vedic Astro computes sidereal (Lahiri ayanamsa) birth charts and analyses them.

It resolves nakshatras, builds whole-sign houses, computes divisional charts,
generates the Vimshottari dasha schedule, and detects classical yogas. With an
OpenAI key configured it can also narrate the chart in plain language.

Use 'astro help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Handle debug flag
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/vedic-astro)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	// Add all command groups
	addChartCommands(rootCmd, app)
	addAnalysisCommands(rootCmd, app)
	addInterpretCommands(rootCmd, app)
	addSnapshotCommands(rootCmd, app)
	addCoreCommands(rootCmd, app)

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("Vedic Astro v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			return showConfig(output, app.Config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init-credentials",
		Short: "Create a credentials.toml skeleton for the OpenAI key",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			configDir, _ := cmd.Flags().GetString("config")
			path, err := config.CreateTemplateCredentials(configDir)
			if err != nil {
				return err
			}
			output.Info("Credentials file: %s", path)
			output.Println("Set openai.api_key there, or export OPENAI_API_KEY.")
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) error {
	output.Bold("Chart Configuration")
	output.Printf("  Default Latitude:  %.4f\n", cfg.Chart.DefaultLatitude)
	output.Printf("  Default Longitude: %.4f\n", cfg.Chart.DefaultLongitude)
	output.Printf("  Default Vargas:    %v\n", cfg.Chart.DefaultVargas)
	output.Println()

	output.Bold("Interpreter Configuration")
	output.Printf("  Model:       %s\n", cfg.Interpreter.Model)
	output.Printf("  Temperature: %.1f\n", cfg.Interpreter.Temperature)
	output.Printf("  Max Tokens:  %d\n", cfg.Interpreter.MaxTokens)
	output.Printf("  API Key:     %v\n", cfg.HasOpenAIKey())
	output.Println()

	output.Bold("Storage")
	output.Printf("  Database: %s\n", cfg.Storage.DatabasePath)
	output.Println()

	output.Bold("UI")
	output.Printf("  Color:       %v\n", cfg.UI.ColorEnabled)
	output.Printf("  Date Format: %s\n", cfg.UI.DateFormat)

	return nil
}
