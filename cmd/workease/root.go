package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/workease/work-ease/internal/config"
	"github.com/workease/work-ease/internal/monitor"
	"github.com/workease/work-ease/internal/notify"
	"github.com/workease/work-ease/internal/source"
	"github.com/workease/work-ease/internal/ui"
)

const appVersion = "0.3.1"

var (
	configPath string
	headless   bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "workease",
	Short: "Ergonomic activity monitor with break reminders",
	Long: `Work Ease watches your keyboard, mouse, feet pedal and voice activity
streams and reminds you to take breaks before you overdo it. It also tracks
how long you have been on a call and nags you after 45 minutes.`,
	Version:      appVersion,
	SilenceUsage: true,
	RunE:         runMonitor,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
	rootCmd.Flags().BoolVar(&headless, "headless", false, "run without the dashboard")
	rootCmd.AddCommand(devicesCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The dashboard owns the terminal, so diagnostics go to a file there.
	logOut := io.Writer(os.Stderr)
	if !headless {
		f, err := os.OpenFile("workease.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := setupLogger(cfg.Logging, logOut)

	mcfg, err := cfg.MonitorConfig()
	if err != nil {
		return err
	}
	cooldown, err := cfg.NotifierConfig()
	if err != nil {
		return err
	}

	sink := notify.NewDesktop(notify.DesktopConfig{
		Cooldown:     cooldown,
		WarnSound:    cfg.Notify.WarnSound,
		RestSound:    cfg.Notify.RestSound,
		SoundVolume:  cfg.Notify.SoundVolume,
		PopupTimeout: cfg.Notify.PopupTimeout,
	}, logger)
	probe := source.NewWindowProbe(source.CallProbeConfig{
		WindowClass:  cfg.Call.WindowClass,
		TitlePattern: cfg.Call.TitlePattern,
	}, logger)
	mon := monitor.New(mcfg, monitor.RealClock{}, sink, probe, logger)

	if cfg.Inputs.TruncateOnStart {
		if err := source.TruncateInputs(cfg.Inputs.FeetPath, cfg.Inputs.VoicePath); err != nil {
			return err
		}
	}

	keyboardID, mouseID, err := source.FindDeviceIDs(cfg.Devices.Keyboard, cfg.Devices.Mouse)
	if err != nil {
		return err
	}
	feet, err := source.NewFileWatcher(mon, cfg.Inputs.FeetPath, monitor.Feet, logger)
	if err != nil {
		return err
	}
	voice, err := source.NewFileWatcher(mon, cfg.Inputs.VoicePath, monitor.Voice, logger)
	if err != nil {
		return err
	}
	reader := source.NewDeviceReader(mon, keyboardID, mouseID, logger)

	logger.Info().
		Str("version", appVersion).
		Str("profile", cfg.Profile).
		Str("keyboard_id", keyboardID).
		Str("mouse_id", mouseID).
		Msg("starting work-ease monitor")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if headless {
		mon.Run(ctx, feet, voice, reader)
		logger.Info().Msg("monitor stopped")
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		mon.Run(ctx, feet, voice, reader)
	}()

	model := ui.NewModel(mon, sink.Log())
	model.SetVersion(appVersion)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithoutSignalHandler())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, runErr := p.Run()
	stop()
	<-done
	return runErr
}

func setupLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level := cfg.Level
	if logLevel != "" {
		level = logLevel
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(parsed).With().Timestamp().Logger()
}
