package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	configPath string
	logPath    string
)

var rootCmd = &cobra.Command{
	Use:   "netcanvas [document.yaml]",
	Short: "Draw connections between annotated document regions",
	Long: brand.Sprint("netcanvas") + ": link annotated regions of a document\n" +
		subtle.Sprint("Hover a region, press to start an arrow, press again on another region to connect."),
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCanvas,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write debug log to this file")
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		bad.Fprintf(os.Stderr, "netcanvas: %v\n", err)
		return err
	}
	return nil
}

func runCanvas(cmd *cobra.Command, args []string) error {
	config := loadConfig(configPath)
	if logPath != "" {
		config.LogFile = logPath
	}
	closeLog, err := setupLogging(config.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	doc := sampleDocument()
	if len(args) == 1 {
		doc, err = LoadDocument(args[0])
		if err != nil {
			return err
		}
	}

	m := initialModel(doc, config)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return err
	}
	m.controller.Dispose()
	printSummary(cmd.OutOrStdout(), m.session.Created())
	return nil
}
