package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/vitrine/internal/config"
	"github.com/muurk/vitrine/internal/contact"
	"github.com/muurk/vitrine/internal/logging"
	"github.com/muurk/vitrine/internal/page/tui"
	"github.com/muurk/vitrine/internal/ui"
)

// errRejected is returned after a rejected submission has been reported
var errRejected = errors.New("submission rejected")

// Command flags
var (
	forceInit bool

	checkName    string
	checkEmail   string
	checkPhone   string
	checkMessage string
)

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")

	contactCheckCmd.Flags().StringVar(&checkName, "name", "", "Full name")
	contactCheckCmd.Flags().StringVar(&checkEmail, "email", "", "Email address")
	contactCheckCmd.Flags().StringVar(&checkPhone, "phone", "", "Phone number")
	contactCheckCmd.Flags().StringVar(&checkMessage, "message", "", "Message")

	configCmd.AddCommand(configInitCmd, configPathCmd, configCheckCmd)
	contactCmd.AddCommand(contactCheckCmd)

	rootCmd.AddCommand(slidesCmd, configCmd, contactCmd)
}

// setupLogging starts the logger. The page logs to a file so nothing is
// written over the alternate screen; other commands log to stderr.
func setupLogging(toFile bool) error {
	output := ""
	if toFile {
		output = logFile
		if output == "" {
			path, err := config.DefaultLogPath()
			if err != nil {
				return err
			}
			output = path
		}
		if err := os.MkdirAll(filepath.Dir(output), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	return logging.Initialize(logLevel, output)
}

// loadConfig loads the config named by --config, VITRINE_CONFIG or the default
func loadConfig() (*config.Config, string, error) {
	path, err := config.ResolvePath(configPath)
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func runPage(cmd *cobra.Command, args []string) error {
	if err := setupLogging(true); err != nil {
		return err
	}

	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	logging.Info("Starting page", zap.String("config", path), zap.Int("slides", len(cfg.Slides)))

	if err := tui.Run(cfg); err != nil {
		return fmt.Errorf("page exited with error: %w", err)
	}
	return nil
}

// slidesCmd lists the configured slides
var slidesCmd = &cobra.Command{
	Use:   "slides",
	Short: "List the configured slides",
	Long: `List the slides the page will show, in order, with their captions
and body sizes.`,
	RunE: runSlides,
}

func runSlides(cmd *cobra.Command, args []string) error {
	if err := setupLogging(false); err != nil {
		return err
	}
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Slides", "vitrine slides",
		ui.Field{Key: "Config", Value: path},
		ui.Field{Key: "Count", Value: strconv.Itoa(len(cfg.Slides))},
	)

	if len(cfg.Slides) == 0 {
		p.Println("No slides configured. The carousel will stay empty.")
		return nil
	}

	p.PrintTable([]string{"#", "Title", "Caption", "Lines"}, slideRows(cfg.Slides))
	return nil
}

// slideRows turns slides into table rows
func slideRows(slides []config.Slide) [][]string {
	rows := make([][]string, 0, len(slides))
	for i, s := range slides {
		lines := 0
		if s.Body != "" {
			lines = strings.Count(strings.TrimRight(s.Body, "\n"), "\n") + 1
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), s.Title, s.Caption, strconv.Itoa(lines)})
	}
	return rows
}

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Example: `  # Write to the default location
  vitrine config init

  # Write somewhere else, replacing any existing file
  vitrine config init --config ./vitrine.yaml --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ResolvePath(configPath)
		if err != nil {
			return err
		}
		if err := config.WriteDefault(path, forceInit); err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Config written", ui.Field{Key: "Path", Value: path})
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ResolvePath(configPath)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := ui.NewPrinter(cmd.OutOrStdout())
		cfg, path, err := loadConfig()
		if err != nil {
			p.PrintError("Invalid config", err, []string{
				"Durations and sizes must not be negative",
				"touch_step and slide_height must be at least 1",
				"Every slide needs a title or a body",
				"Run 'vitrine config init --force' to start over",
			})
			return err
		}
		p.PrintSuccess("Config OK",
			ui.Field{Key: "Path", Value: path},
			ui.Field{Key: "Slides", Value: strconv.Itoa(len(cfg.Slides))},
			ui.Field{Key: "Autoplay", Value: cfg.Carousel.Options().AutoplayDelay.String()},
		)
		return nil
	},
}

// contactCmd groups contact form commands
var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Contact form tools",
}

var contactCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate contact details the way the page form does",
	Long: `Run the page's contact form validation on the given values and
report the result. Nothing is stored or sent.`,
	Example: `  vitrine contact check --name "Ada Lovelace" --email ada@example.com`,
	RunE:    runContactCheck,
}

func runContactCheck(cmd *cobra.Command, args []string) error {
	if err := setupLogging(false); err != nil {
		return err
	}

	out := contact.NewHandler().Submit(contact.Submission{
		FullName: checkName,
		Email:    checkEmail,
		Phone:    checkPhone,
		Message:  checkMessage,
	})

	p := ui.NewPrinter(cmd.OutOrStdout())
	if !out.Accepted() {
		var hints []string
		if ve, ok := contact.AsValidationError(out.Err); ok {
			hints = append(hints, "Check --"+flagFor(ve.Field))
		}
		p.PrintError(out.Alert, nil, hints)
		return errRejected
	}

	p.PrintSuccess(out.Notice)
	return nil
}

// flagFor maps a form field name to its flag
func flagFor(field string) string {
	switch field {
	case contact.FieldFullName:
		return "name"
	case contact.FieldEmail:
		return "email"
	case contact.FieldPhone:
		return "phone"
	}
	return "message"
}
