package simutils

import (
	_ "embed"
	"flag"
	"fmt"
	"os"

	"github.com/negm177/OS-Project/internal/simconfig"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > githash.txt"
//go:embed githash.txt
var gitHash string

func GetGitHash() string {
	return gitHash
}

// CmdArgs holds the command line overrides. Zero values mean the flag was
// not given and the config file (or default) wins.
type CmdArgs struct {
	Identifier   string
	ConfigPath   string
	NumElevators int
	NumFloors    int
	NumRequests  int
	Seed         int64
}

func ProcessCmdArgs() CmdArgs {
	help := flag.Bool("help", false, "Show Help Window")
	version := flag.Bool("version", false, "Show Version")
	identifier := flag.String("id", "", "Set the identifier of the simulation run. Defaults to random string")
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults to built-in settings")
	numElevators := flag.Int("elevators", 0, "Number of elevators in the building. Overrides the config file")
	numFloors := flag.Int("floors", 0, "Number of floors in the building. Overrides the config file")
	numRequests := flag.Int("requests", 0, "Number of random requests to generate. Overrides the config file")
	seed := flag.Int64("seed", 0, "Random seed for the request generator. Defaults to the clock")

	flag.Parse()

	if *numElevators < 0 || *numFloors < 0 || *numRequests < 0 {
		fmt.Println("Elevator, floor and request counts cannot be negative")
		os.Exit(1)
	}

	if *version {
		fmt.Println("Version:", GetGitHash())
		os.Exit(0)
	}

	if *help {
		fmt.Println("Usage: ./simulator [OPTIONS]")
		fmt.Println("Multi-elevator dispatch simulator")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	return CmdArgs{
		Identifier:   *identifier,
		ConfigPath:   *configPath,
		NumElevators: *numElevators,
		NumFloors:    *numFloors,
		NumRequests:  *numRequests,
		Seed:         *seed,
	}
}

// Apply lays the command line overrides over a loaded config.
func (args CmdArgs) Apply(c simconfig.Config) simconfig.Config {
	if args.NumElevators > 0 {
		c.NumElevators = args.NumElevators
	}
	if args.NumFloors > 0 {
		c.NumFloors = args.NumFloors
	}
	if args.NumRequests > 0 {
		c.NumRequests = args.NumRequests
	}
	if args.Seed != 0 {
		c.Seed = args.Seed
	}
	return c
}
