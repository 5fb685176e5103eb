// Package main provides the entry point for the crouton demo.
//
// Crouton is a dismissible toast notification component for Bubble Tea
// TUIs. The demo mounts toasts on keypresses and shows the full owner
// contract: auto-dismiss after five seconds, manual dismissal, and
// callback rebinding.
//
// Usage:
//
//	crouton [--config dir] [--debug] [--message text --variant error|info]
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/emilhart/crouton/internal/app"
	"github.com/emilhart/crouton/internal/config"
	"github.com/emilhart/crouton/internal/debug"
)

const version = "0.1.0"

func main() {
	var (
		configDir   string
		debugFlag   bool
		message     string
		variantName string
		showVersion bool
	)

	flag.StringVar(&configDir, "config", ".", "Directory containing "+config.FileName)
	flag.BoolVar(&debugFlag, "debug", false, "Write a debug log to ~/.crouton/debug.log")
	flag.StringVar(&message, "message", "", "Override the demo toast message")
	flag.StringVar(&variantName, "variant", "info", "Variant for --message (error|info)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("crouton " + version)
		return
	}

	if err := debug.Init(debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing debug log: %v\n", err)
		os.Exit(1)
	}
	defer debug.Close() //nolint:errcheck

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if message != "" {
		switch variantName {
		case "error":
			cfg.Demo.ErrorMessage = message
		case "info":
			cfg.Demo.InfoMessage = message
		default:
			fmt.Fprintf(os.Stderr, "Unknown variant %q (want error or info)\n", variantName)
			os.Exit(1)
		}
	}

	model := app.New(cfg)
	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, opts...)

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
