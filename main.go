package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"thesisdeck/config"
	"thesisdeck/deck"
	"thesisdeck/logger"
)

var (
	configPath  string
	forceCharts bool
	strictMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "deckbuild",
	Short: "Build the thesis presentation deck and its supporting artifacts",
	Long: "deckbuild validates the slide outline, renders the statistical charts, " +
		"and assembles the presentation together with its handout, speaker notes, " +
		"and build report.",
	SilenceUsage: true,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the outline for missing assets, citations, and layout problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, log, err := newService()
		if err != nil {
			return err
		}
		defer log.Close()

		res, err := svc.Validate(deck.DefaultOutline())
		if err != nil {
			return err
		}
		for _, w := range res.Warnings {
			fmt.Fprintln(cmd.OutOrStdout(), "warning:", w)
		}
		if err := res.Err(); err != nil {
			return err
		}
		if strictMode && len(res.Warnings) > 0 {
			return fmt.Errorf("outline has %d style warning(s) and --strict is set", len(res.Warnings))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "outline is valid")
		return nil
	},
}

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render the deck's charts, skipping ones that are already fresh",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, log, err := newService()
		if err != nil {
			return err
		}
		defer log.Close()

		res, err := svc.GenerateCharts(buildRunID(), forceCharts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "rendered %d, skipped %d, failed %d\n",
			len(res.Rendered), len(res.Skipped), len(res.Failed))
		if len(res.Failed) > 0 {
			for name, ferr := range res.Failed {
				fmt.Fprintf(cmd.OutOrStdout(), "failed: %s: %v\n", name, ferr)
			}
			return fmt.Errorf("%d chart(s) failed to render", len(res.Failed))
		}
		return nil
	},
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the full pipeline and write every artifact",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, log, err := newService()
		if err != nil {
			return err
		}
		defer log.Close()
		return svc.Build(forceCharts)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the XLSX outline and asset report without building the deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, log, err := newService()
		if err != nil {
			return err
		}
		defer log.Close()
		return svc.Report()
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config already exists at %s", configPath)
		}
		if err := config.Save(configPath, config.Default()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", configPath)
		return nil
	},
}

func newService() (*BuildService, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if strictMode {
		cfg.StrictWarnings = true
	}
	log := logger.NewLogger()
	if err := log.Init(cfg.LogDir); err != nil {
		return nil, nil, WrapOperationError("initialize logging", err)
	}
	return NewBuildService(cfg, log), log, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "deckbuild.json", "path to the config file")
	rootCmd.PersistentFlags().BoolVar(&strictMode, "strict", false, "treat style warnings as failures")
	chartsCmd.Flags().BoolVar(&forceCharts, "force", false, "re-render charts even when fresh")
	buildCmd.Flags().BoolVar(&forceCharts, "force", false, "re-render charts even when fresh")

	rootCmd.AddCommand(validateCmd, chartsCmd, buildCmd, reportCmd, initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
