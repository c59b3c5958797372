package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"quackshot/game"
	"quackshot/logging"
	"quackshot/save"
	"quackshot/terminal"
)

func main() {
	configPath := flag.String("config", "quackshot.yaml", "path to the YAML config")
	savePath := flag.String("save", "quackshot-save.yaml", "path to the save file")
	remote := flag.String("remote", "", "quackserver base URL; saves go to a server profile instead of the file")
	profile := flag.String("profile", "", "server profile id (a new one is created when empty)")
	logPath := flag.String("log", "quackterm.log", "log file; the terminal itself is the screen")
	flag.Parse()

	if err := run(*configPath, *savePath, *remote, *profile, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "quackterm: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, savePath, remote, profile, logPath string) error {
	config, err := game.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	log := logging.NewWithWriter(logFile, "terminal", config.LogFormat, config.LogLevel)
	game.SetLogger(logging.NewWithWriter(logFile, "game", config.LogFormat, config.LogLevel))

	store, err := save.Open(savePath, remote, profile)
	if err != nil {
		return err
	}
	if rs, ok := store.(*save.RemoteStore); ok {
		log.Info("using server profile", "id", rs.ProfileID())
	}
	session := save.Restore(store, log)
	if err := session.SelectLevel(config.StartLevel); err != nil {
		log.Warn("start level unavailable", "level", config.StartLevel, "error", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = terminal.New(screen, config, session, log).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
