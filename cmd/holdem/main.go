package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"holdem-server/internal/config"
)

// Version is the build version
var Version = "v0.0.0-dev"

// CLI are the holdem commands
type CLI struct {
	Version  kong.VersionFlag `kong:"short='v',help='Show version'"`
	Play     PlayCmd          `kong:"cmd,help='Play hands at a local table driven by the autopilot'"`
	Simulate SimulateCmd      `kong:"cmd,help='Play many tables concurrently and report the winning combinations'"`
	Eval     EvalCmd          `kong:"cmd,help='Evaluate the best combination of a set of cards'"`
	Serve    ServeCmd         `kong:"cmd,help='Run the game server'"`
	Config   ConfigCmd        `kong:"cmd,help='Print the configuration as YAML'"`
}

func main() {
	cfg := config.Instance()
	setupLogger(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em rules engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": Version,
			"variant": cfg.Game.Variant,
			"chips":   strconv.Itoa(cfg.Game.StartingChips),
			"seats":   strconv.Itoa(cfg.Game.Seats),
			"hands":   strconv.Itoa(cfg.Game.Hands),
			"tables":  strconv.Itoa(cfg.Game.Tables),
			"addr":    cfg.Server.Addr,
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Bind(cfg),
	)

	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
