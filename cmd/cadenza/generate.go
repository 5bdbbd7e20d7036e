package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/cadenza"
	"github.com/aretw0/cadenza/internal/cli"
	"github.com/aretw0/cadenza/internal/presentation/tui"
	"github.com/aretw0/cadenza/pkg/domain"
	"github.com/aretw0/cadenza/pkg/theory"
)

// generateCmd runs one generation and prints the result.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a chord progression",
	Long:  `Runs one random walk over the configured transition net and prints the rendered chords.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")

		cfg, err := cli.LoadConfig(configPath)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, &cfg)

		opts := []cadenza.Option{
			cadenza.WithConfig(cfg),
			cadenza.WithLogger(cli.CreateLogger(debug)),
		}
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			opts = append(opts, cadenza.WithSeed(seed))
		}

		eng, err := cadenza.New(opts...)
		if err != nil {
			return err
		}

		prog, err := eng.Generate(context.Background())
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		pretty, _ := cmd.Flags().GetBool("pretty")
		switch {
		case asJSON:
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(prog)
		case pretty:
			render := tui.NewRenderer()
			out, err := render(tui.MarkdownSummary(prog, cfg))
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		default:
			fmt.Print(tui.FormatProgression(prog, tui.ColorEnabled()))
			return nil
		}
	},
}

// applyFlagOverrides layers the command-line flags over the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *domain.Config) {
	if cmd.Flags().Changed("max") {
		cfg.Max, _ = cmd.Flags().GetInt("max")
	}
	if cmd.Flags().Changed("root") {
		cfg.ScaleRoot, _ = cmd.Flags().GetString("root")
	}
	if cmd.Flags().Changed("scale") {
		cfg.ScaleName, _ = cmd.Flags().GetString("scale")
	}
	if cmd.Flags().Changed("octave") {
		cfg.Octave, _ = cmd.Flags().GetInt("octave")
	}
	if cmd.Flags().Changed("tonic") {
		v, _ := cmd.Flags().GetString("tonic")
		cfg.TonicPolicy = domain.Policy(v)
	}
	if cmd.Flags().Changed("resolve") {
		v, _ := cmd.Flags().GetString("resolve")
		cfg.ResolvePolicy = domain.Policy(v)
	}
	if cmd.Flags().Changed("substitute") {
		cfg.Substitute, _ = cmd.Flags().GetBool("substitute")
	}
	if cmd.Flags().Changed("flat") {
		cfg.Flat, _ = cmd.Flags().GetBool("flat")
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntP("max", "m", 8, "Progression length")
	generateCmd.Flags().StringP("root", "r", "C", "Scale root note")
	generateCmd.Flags().StringP("scale", "s", "major",
		"Scale name ("+strings.Join(theory.ScaleNames(), "|")+")")
	generateCmd.Flags().Int("octave", 4, "Base octave for chord roots")
	generateCmd.Flags().String("tonic", "fixed", "First-position policy (fixed|neighbor|random)")
	generateCmd.Flags().String("resolve", "fixed", "Last-position policy (fixed|neighbor|random)")
	generateCmd.Flags().Bool("substitute", false, "Enable jazz substitutions")
	generateCmd.Flags().Bool("flat", false, "Re-spell sharp pitches with flats")
	generateCmd.Flags().Int64("seed", 0, "Random seed for reproducible output")
	generateCmd.Flags().Bool("json", false, "Print the progression as JSON")
	generateCmd.Flags().Bool("pretty", false, "Render a markdown summary")
}
