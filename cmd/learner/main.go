// Package main provides the terminal learner for the digital literacy content.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gokatarajesh/digilit/internal/config"
)

var (
	apiURL        string
	statsCategory string
)

func main() {
	_ = godotenv.Load("configs/.env")

	rootCmd, err := newRootCmd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, error) {
	cfg, err := config.LoadLearner()
	if err != nil {
		return nil, err
	}

	rootCmd := &cobra.Command{
		Use:          "learner",
		Short:        "Digital literacy quiz, typing tutor, glossary and statistics",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", cfg.APIURL, "content API base URL")

	rootCmd.AddCommand(newQuizCmd(cfg))
	rootCmd.AddCommand(newTypingCmd())
	rootCmd.AddCommand(newGlossaryCmd(cfg))
	rootCmd.AddCommand(newStatsCmd(cfg))
	return rootCmd, nil
}
