// Package main provides the comrad entry point.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/comrad/internal/app"
	"github.com/llehouerou/comrad/internal/catalog"
	"github.com/llehouerou/comrad/internal/config"
	"github.com/llehouerou/comrad/internal/errmsg"
	"github.com/llehouerou/comrad/internal/icons"
	"github.com/llehouerou/comrad/internal/logger"
	"github.com/llehouerou/comrad/internal/mpris"
	"github.com/llehouerou/comrad/internal/notify"
	"github.com/llehouerou/comrad/internal/playback"
	"github.com/llehouerou/comrad/internal/player"
	"github.com/llehouerou/comrad/internal/playlists"
	"github.com/llehouerou/comrad/internal/state"
	"github.com/llehouerou/comrad/internal/stderr"
	"github.com/llehouerou/comrad/internal/tags"
)

var (
	cli        = kingpin.New("comrad", "Terminal music player")
	configPath = cli.Flag("config", "Path to config file").String()
	verbose    = cli.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = cli.Flag("logfile", "Path to log file").String()
	startDir   = cli.Flag("dir", "Directory to browse at start").ExistingDir()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	kingpin.MustParse(cli.Parse(os.Args[1:]))

	// C libraries write straight to fd 2; keep that off the terminal
	if err := stderr.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not capture stderr: %v\n", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		stderr.Stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logCloser, err := initLogger(cfg)
	if err != nil {
		stderr.Stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = run(cfg)
	_ = logCloser.Close()
	stderr.Stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

func initLogger(cfg *config.Config) (io.Closer, error) {
	lc := logger.Config{Level: cfg.Log.Level, File: cfg.Log.File}
	if *verbose {
		lc.Level = "debug"
	}
	if *logfile != "" {
		lc.File = *logfile
	}
	return logger.Init(lc)
}

// run wires the collaborators and runs the UI until it quits. Deferred
// closes run in reverse order, after the model saved its state.
func run(cfg *config.Config) error {
	icons.Init(cfg.Icons)

	store, err := catalog.Open(cfg.DataDir)
	if err != nil {
		return err
	}
	settings, err := store.LoadSettings()
	if err != nil {
		zlog.Warn().Err(err).Msg("load settings, using defaults")
	}
	lists, err := playlists.Load(store)
	if err != nil {
		zlog.Warn().Err(err).Msg("load playlists, starting empty")
	}

	resume, err := state.Open(cfg.DataDir)
	if err != nil {
		return errors.Wrap(err, "open session store")
	}
	defer func() {
		if err := resume.Close(); err != nil {
			zlog.Warn().Err(err).Msg("close session store")
		}
	}()

	device := player.New()
	defer func() {
		if err := device.Close(); err != nil {
			zlog.Warn().Err(err).Msg("close audio device")
		}
	}()

	meta := tags.NewReader()
	session := playback.New(playback.Config{
		Player:            device,
		Metadata:          meta,
		Rand:              playback.NewRand(cfg.ShuffleSeed),
		SkipBackThreshold: cfg.SkipBackThreshold(),
	})
	remote := playback.NewRemote()

	deps := app.Deps{
		Session:   session,
		Metadata:  meta,
		Remote:    remote,
		Playlists: lists,
		Settings:  settings,
		Store:     store,
		State:     resume,
		Messages:  stderr.Messages,
		StartDir:  *startDir,
		Tick:      cfg.Tick(),
	}

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(session, remote)
		if err != nil {
			zlog.Warn().Err(err).Msg("mpris unavailable")
		} else {
			defer adapter.Close()
			deps.Publisher = adapter
		}
	}

	if cfg.NotificationsEnabled() {
		n, err := notify.New()
		if err != nil {
			zlog.Warn().Err(err).Msg("notifications unavailable")
		} else {
			deps.Tracks = notify.NewTrackNotifier(n, meta)
		}
	}

	zlog.Info().Str("data_dir", cfg.DataDir).Msg("starting")
	p := tea.NewProgram(app.New(deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run ui")
	}
	return nil
}
