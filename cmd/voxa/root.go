package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/voxa-labs/voxa/dialogue"
	"github.com/voxa-labs/voxa/observability"
	"github.com/voxa-labs/voxa/session"
)

var (
	configFile string
	engineMode string
	debug      bool
)

var (
	userStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	agentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var rootCmd = &cobra.Command{
	Use:   "voxa",
	Short: "Voxa: 语音优先的对话代理",
	Long:  "Voxa is a voice-first dialogue agent: one fixed pipeline per turn, from input normalization through routing and memory to speech synthesis.",
	RunE:  runChat,
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "config/settings.yaml", "path to YAML config file")
	rootCmd.Flags().StringVar(&engineMode, "engine", "", "execution mode: graph or sequential (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg, err := dialogue.LoadConfig(configFile)
	if err != nil {
		return err
	}
	if engineMode != "" {
		cfg.App.Engine = engineMode
	}

	if cfg.App.Mode != "cli" {
		fmt.Println("当前仅实现 CLI 模式。可在配置中将 app.mode 设为 cli。")
		return nil
	}

	if err := os.MkdirAll(cfg.App.LogDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log dir: %w", err)
	}

	logger := newLogger()

	observer, closeLog, err := newObserver(cfg.App.LogDir, logger)
	if err != nil {
		return err
	}
	defer closeLog()

	observability.RegisterObserver("cli", observer)
	cfg.App.Observer = "cli"

	engine, err := dialogue.New(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	state := session.NewState()

	fmt.Println(hintStyle.Render("Her 风格对话（输入 exit 退出）"))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(userStyle.Render("你: "))

		if !scanner.Scan() || ctx.Err() != nil {
			fmt.Println("\n再见👋")
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if lower := strings.ToLower(line); lower == "exit" || lower == "quit" {
			fmt.Println("再见👋")
			return nil
		}

		// In CLI mode the typed line stands in for the STT transcript.
		state.STTText = line

		if err := engine.RunTurn(ctx, state); err != nil {
			logger.Error().Err(err).Msg("turn failed")
			continue
		}

		fmt.Println(agentStyle.Render("她: ") + state.ResponseText)
	}
}

// newLogger builds the console logger for CLI messages.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// newObserver builds the CLI event sink: engine events fan out to the
// console logger and to a JSON log file under logDir. The returned func
// closes the file.
func newObserver(logDir string, logger zerolog.Logger) (observability.Observer, func(), error) {
	logFile, err := os.OpenFile(
		filepath.Join(logDir, "voxa.log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0o644,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	slogLevel := slog.LevelInfo
	if debug {
		slogLevel = slog.LevelDebug
	}
	fileLogger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slogLevel}))

	observer := observability.NewMultiObserver(
		observability.NewZerologObserver(logger),
		observability.NewSlogObserver(fileLogger),
	)
	return observer, func() { logFile.Close() }, nil
}
