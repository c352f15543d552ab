package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"memmatch/internal/board"
	"memmatch/internal/config"
	"memmatch/internal/game"
	"memmatch/internal/schedule"
	"memmatch/internal/scoring"
	"memmatch/internal/sound"
	"memmatch/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	// Global flags
	configPath   string
	difficulty   string
	settleDelay  time.Duration
	tickInterval time.Duration
	noSound      bool
	seed         int64
	symbolFiles  []string
	logFile      string
	verbose      bool

	writeConfig bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "memmatch",
	Short: "A tile-matching memory game for the terminal",
	Long: `memmatch deals a grid of face-down tiles, each symbol appearing exactly twice.
Turn over two tiles per move; matching pairs stay up, the rest flip back.
Clear the board in as few moves as you can.

Settings come from the config file, then MEMMATCH_* environment variables,
then command-line flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame(cfg, logger)
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the difficulty presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printPresets(cmd.OutOrStdout(), cfg.Difficulty)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Prints the configuration the game would run with, as YAML.
With --write the configuration is also saved to the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		if !writeConfig {
			return nil
		}
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ~/.config/memmatch/config.yaml)")
	flags.StringVarP(&difficulty, "difficulty", "d", board.DefaultDifficulty, "Difficulty preset: easy, medium or hard")
	flags.DurationVar(&settleDelay, "settle", game.DefaultSettleDelay, "How long a revealed pair stays up")
	flags.DurationVar(&tickInterval, "tick", game.DefaultTickInterval, "Elapsed time refresh interval")
	flags.BoolVar(&noSound, "no-sound", false, "Start with sound disabled")
	flags.Int64Var(&seed, "seed", 0, "Shuffle seed (0 = random)")
	flags.StringSliceVar(&symbolFiles, "symbols", nil, "Symbol files or directories replacing the built-in palette")
	flags.StringVar(&logFile, "log-file", "", "Write logs to this file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	configCmd.Flags().BoolVar(&writeConfig, "write", false, "Save the effective configuration to the config file")

	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// loadConfig layers flags the user actually set over file and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("difficulty") {
		c.Difficulty = difficulty
	}
	if flags.Changed("settle") {
		c.SettleDelay = settleDelay
	}
	if flags.Changed("tick") {
		c.TickInterval = tickInterval
	}
	if flags.Changed("no-sound") {
		c.Sound = !noSound
	}
	if flags.Changed("seed") {
		c.Seed = seed
	}
	if flags.Changed("symbols") {
		c.PaletteFiles = symbolFiles
	}
	if flags.Changed("log-file") {
		c.LogFile = logFile
	}
	if flags.Changed("verbose") {
		c.Verbose = verbose
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

// newLogger writes JSON logs to the configured file. Without one the logger
// is a no-op since the terminal belongs to the game.
func newLogger(c *config.Config) (*zap.Logger, error) {
	if c.LogFile == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{c.LogFile}
	zc.ErrorOutputPaths = []string{c.LogFile}
	if c.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

func runGame(c *config.Config, log *zap.Logger) error {
	palette := board.DefaultPalette()
	if len(c.PaletteFiles) > 0 {
		var err error
		if palette, err = board.LoadPalette(c.PaletteFiles); err != nil {
			return err
		}
		log.Info("palette loaded", zap.Strings("files", c.PaletteFiles), zap.Int("symbols", len(palette)))
	}

	bell := sound.NewBell(os.Stderr)
	bell.SetEnabled(c.Sound)

	sched := schedule.NewRealtime(nil)
	model, err := ui.New(sched, game.Options{
		Difficulty:   c.Difficulty,
		SettleDelay:  c.SettleDelay,
		TickInterval: c.TickInterval,
		Palette:      palette,
		Rand:         board.NewRand(c.Seed),
		Logger:       log,
		Scores:       scoring.NewMemoryStorage(),
	}, bell)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	sched.SetDispatch(ui.Dispatcher(p.Send))

	log.Info("starting", zap.String("difficulty", c.Difficulty), zap.Int64("seed", c.Seed))
	_, err = p.Run()
	model.Game().Stop()
	if err != nil {
		return fmt.Errorf("error running the program: %w", err)
	}
	return nil
}

func printPresets(w io.Writer, selected string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KEY", "LABEL", "GRID", "PAIRS", "")
	for _, d := range board.Presets() {
		mark := ""
		if d.Key == selected {
			mark = "*"
		}
		t.Row(d.Key, d.Label, fmt.Sprintf("%dx%d", d.Rows, d.Cols), strconv.Itoa(d.PairCount), mark)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
