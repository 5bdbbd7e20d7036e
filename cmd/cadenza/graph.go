package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/cadenza/internal/cli"
	"github.com/aretw0/cadenza/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the transition net visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) representing the configured transition net.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := cli.LoadConfig(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(cfg.Net, cfg.ChordQualities))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
