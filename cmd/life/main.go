package main

import (
	"fmt"
	"log"
	"os"

	"torus-life/internal/config"
	"torus-life/internal/life"
	"torus-life/internal/report"
	"torus-life/internal/session"
	"torus-life/internal/tui"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "life",
		Short: "Conway's Game of Life on a 64x48 torus",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := cfg.Overlay(configFile, cmd.Flags()); err != nil {
					return err
				}
			}
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cfg)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cfg.Bind(rootCmd.PersistentFlags())

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the simulation window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cfg)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cfg)
			if err != nil {
				return err
			}
			return tui.Run(s, cfg.Rate)
		},
	}

	var generations int
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "step the simulation headless and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadless(cmd, cfg, generations)
		},
	}
	runCmd.Flags().IntVarP(&generations, "generations", "g", 100, "number of generations to step")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list starting patterns",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range life.Patterns() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, patternsCmd)
	return rootCmd
}

func newSession(cfg *config.Config) (*session.Session, error) {
	p, err := cfg.StartPattern()
	if err != nil {
		return nil, err
	}
	s := session.New(p)
	s.SetEditing(cfg.Editing)
	if cfg.Paused {
		s.HandleEvent(session.Press{Button: session.KeyPause})
	}
	return s, nil
}

func runHeadless(cmd *cobra.Command, cfg *config.Config, generations int) error {
	if generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", generations)
	}
	p, err := cfg.StartPattern()
	if err != nil {
		return err
	}
	l := life.New()
	l.Seed(p)

	history := make([]float64, 0, generations+1)
	history = append(history, float64(l.Population()))
	for i := 0; i < generations; i++ {
		l.Step()
		history = append(history, float64(l.Population()))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pattern %s after %d generations, population %d\n\n", cfg.Pattern, l.Generation(), l.Population())
	fmt.Fprint(out, report.Grid(l.Grid()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.PopulationChart(history))
	return nil
}
