package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"quackshot/client"
	"quackshot/game"
	"quackshot/logging"
	"quackshot/save"
)

func main() {
	configPath := flag.String("config", "quackshot.yaml", "path to the YAML config")
	savePath := flag.String("save", "quackshot-save.yaml", "path to the save file")
	remote := flag.String("remote", "", "quackserver base URL; saves go to a server profile instead of the file")
	profile := flag.String("profile", "", "server profile id (a new one is created when empty)")
	profileDir := flag.String("profiles", "", "capture CPU profiles and traces into this directory on frame drops")
	flag.Parse()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New("client", config.LogFormat, config.LogLevel)
	game.SetLogger(logging.New("game", config.LogFormat, config.LogLevel))

	store, err := save.Open(*savePath, *remote, *profile)
	if err != nil {
		log.Fatal(err)
	}
	if rs, ok := store.(*save.RemoteStore); ok {
		logger.Info("using server profile", "id", rs.ProfileID())
	}
	session := save.Restore(store, logger)
	if err := session.SelectLevel(config.StartLevel); err != nil {
		logger.Warn("start level unavailable", "level", config.StartLevel, "error", err)
	}

	app := client.New(config, session, logger)
	if *profileDir != "" {
		app.EnableProfiling(*profileDir)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Quackshot")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
