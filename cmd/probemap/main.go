package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.0.1"

type config struct {
	Loglevel string
	Capacity int

	Hash        string
	DeleteRatio float64
	Compact     bool
	Bins        int
}

var (
	cfg     config
	rootCmd = &cobra.Command{
		Use:     "probemap",
		Short:   "Fixed-capacity linear probing hash map playground",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setLogLevel(cfg.Loglevel)
		},
	}

	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Walks through every map operation and prints the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return runDemo(cmd.OutOrStdout(), cfg.Capacity)
		},
	}

	fillCmd = &cobra.Command{
		Use:   "fill",
		Short: "Fills a map with random keys and reports how far keys were probed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return runFill(cmd.OutOrStdout(), &cfg)
		},
	}
)

func init() {
	log.SetLevel(log.InfoLevel)
	log.SetOutput(os.Stdout)

	rootCmd.PersistentFlags().StringVarP(&cfg.Loglevel, "loglevel", "o", "info", "Loglevel, e.g., INFO, DEBUG, . . .")
	rootCmd.PersistentFlags().IntVarP(&cfg.Capacity, "capacity", "c", 10, "Number of slots in the map")

	fillCmd.Flags().StringVar(&cfg.Hash, "hash", "maphash", "Hash function, maphash or xxhash")
	fillCmd.Flags().Float64VarP(&cfg.DeleteRatio, "delete-ratio", "d", 0.25, "Fraction of keys to delete after filling")
	fillCmd.Flags().BoolVar(&cfg.Compact, "compact", false, "Compact the map after deleting")
	fillCmd.Flags().IntVar(&cfg.Bins, "bins", 8, "Number of histogram bins")

	rootCmd.AddCommand(demoCmd, fillCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "all":
		log.SetLevel(log.DebugLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
		fmt.Printf("Invalid log level '%s'. Setting log level to 'info'\n", level)
	}

	log.SetOutput(os.Stderr)
}
