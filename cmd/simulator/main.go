package main

import (
	"github.com/rs/zerolog"

	"github.com/negm177/OS-Project/internal/building"
	"github.com/negm177/OS-Project/internal/generator"
	"github.com/negm177/OS-Project/internal/logger"
	"github.com/negm177/OS-Project/internal/simconfig"
	"github.com/negm177/OS-Project/internal/simevent"
	"github.com/negm177/OS-Project/internal/simmeta"
	"github.com/negm177/OS-Project/internal/simutils"
)

var Logger = logger.GetLoggerConfigured(zerolog.InfoLevel)

func main() {
	args := simutils.ProcessCmdArgs()

	cfg := simconfig.Default()
	if args.ConfigPath != "" {
		var err error
		cfg, err = simconfig.Load(args.ConfigPath)
		if err != nil {
			Logger.Fatal().Msgf("Failed to load config file %v: %v", args.ConfigPath, err)
		}
	}
	cfg = args.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		Logger.Fatal().Msgf("Invalid configuration: %v", err)
	}

	// Starting Programme
	Logger.Info().Msg("Starting Building Simulator")

	meta := simmeta.NewRunMeta(args.Identifier, simutils.GetGitHash(), cfg.NumElevators, cfg.NumFloors)
	Logger.Info().Msgf("Run: %v", meta.String())

	b := building.NewBuilding(cfg.NumElevators, cfg.NumFloors, cfg.TravelTimePerFloor, simevent.NewLogSink())
	if err := b.StartAll(); err != nil {
		Logger.Fatal().Msgf("Failed to start elevators: %v", err)
	}

	gen := generator.NewGenerator(b, cfg.NumRequests, cfg.SubmitInterval, cfg.Seed)
	gen.Run()

	b.WaitAll()
	Logger.Info().Msg("Simulation completed")
}
