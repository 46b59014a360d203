// Command xornet trains a small feedforward network on the XOR truth table.
//
// To train: `go run ./cmd/xornet train -epochs=5000 -lr=0.5 -hidden=4`
//
// To train from a file: `go run ./cmd/xornet train -config=xornet.yaml -show-weights`
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/born-ml/xornet/internal/config"
	"github.com/born-ml/xornet/internal/trainer"
)

const version = "v0.1.0"

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&TrainCommand{}, "")
	subcommands.Register(&VersionCommand{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

type TrainCommand struct {
	configFile string

	seed         int64
	epochs       int
	learningRate float64
	hiddenUnits  int
	printEvery   int
	outputInit   string

	showWeights bool
}

var _ subcommands.Command = (*TrainCommand)(nil)

func (*TrainCommand) Name() string {
	return "train"
}

func (*TrainCommand) Synopsis() string {
	return "Train the XOR network and print its evaluation"
}

func (*TrainCommand) Usage() string {
	return `train [-config file] [-seed n] [-epochs n] [-lr rate] [-hidden n] [-print-every n] [-output-init output|hidden] [-show-weights]
`
}

func (c *TrainCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configFile, "config", "", "Path to a YAML config file")

	f.Int64Var(&c.seed, "seed", -1, "Random seed; negative picks one at random")
	f.IntVar(&c.epochs, "epochs", 0, "Number of training epochs")
	f.Float64Var(&c.learningRate, "lr", 0, "Learning rate")
	f.IntVar(&c.hiddenUnits, "hidden", 0, "Number of hidden units")
	f.IntVar(&c.printEvery, "print-every", 0, "Print progress every n epochs")
	f.StringVar(&c.outputInit, "output-init", "", `Output weight bound: "output" or "hidden"`)

	f.BoolVar(&c.showWeights, "show-weights", false, "Print the trained weights")
}

func (c *TrainCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.executeErr(ctx); err != nil {
		log.Printf("Error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *TrainCommand) executeErr(ctx context.Context) error {
	cfg := config.Default()
	if c.configFile != "" {
		loaded, err := config.Load(c.configFile)
		if err != nil {
			return fmt.Errorf("while loading config: %w", err)
		}
		cfg = loaded
	}

	overrides := config.Overrides{
		Seed:         config.ResolveSeed(c.seed, c.configFile != "", trainer.RandomSeed),
		Epochs:       c.epochs,
		LearningRate: c.learningRate,
		HiddenUnits:  c.hiddenUnits,
		PrintEvery:   c.printEvery,
		OutputInit:   c.outputInit,
	}
	cfg.ApplyOverrides(overrides)
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Println("=== XOR Network Configuration ===")
	fmt.Printf("Seed: %d\n", cfg.Seed)
	fmt.Printf("Epochs: %d (progress every %d)\n", cfg.Epochs, cfg.PrintEvery)
	fmt.Printf("Learning rate: %g\n", cfg.LearningRate)
	fmt.Printf("Hidden units: %d\n\n", cfg.HiddenUnits)

	report, err := trainer.Run(ctx, cfg, trainer.Options{Progress: os.Stdout})
	if err != nil {
		return fmt.Errorf("while training: %w", err)
	}
	if err := trainer.WriteSummary(os.Stdout, report, c.showWeights); err != nil {
		return fmt.Errorf("while writing summary: %w", err)
	}

	fmt.Println()
	fmt.Println("Training session finished successfully.")
	return nil
}

type VersionCommand struct{}

var _ subcommands.Command = (*VersionCommand)(nil)

func (*VersionCommand) Name() string     { return "version" }
func (*VersionCommand) Synopsis() string { return "Show version" }
func (*VersionCommand) Usage() string    { return "version\n" }

func (*VersionCommand) SetFlags(*flag.FlagSet) {}

func (*VersionCommand) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	fmt.Printf("xornet %s\n", version)
	return subcommands.ExitSuccess
}
