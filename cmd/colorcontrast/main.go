package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/x/term"
	"github.com/leonardotrapani/colorcontrast/internal/color"
	"github.com/leonardotrapani/colorcontrast/internal/config"
	"github.com/leonardotrapani/colorcontrast/internal/contrast"
	"github.com/leonardotrapani/colorcontrast/internal/palette"
	"github.com/leonardotrapani/colorcontrast/internal/report"
	"github.com/leonardotrapani/colorcontrast/internal/session"
	"github.com/leonardotrapani/colorcontrast/internal/tui"
	"github.com/spf13/cobra"
)

// errNotPassing makes the process exit with status 1 without printing an
// error; the command already reported the failure.
var errNotPassing = errors.New("contrast requirements not met")

var (
	verbose    bool
	configPath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNotPassing) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "colorcontrast",
		Short:         "WCAG color contrast checker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				log.SetOutput(io.Discard)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print log output")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/colorcontrast/config.toml)")

	root.AddCommand(
		checkCmd(),
		paletteCmd(),
		watchCmd(),
		convertCmd(),
		pickCmd(),
		configCmd(),
	)
	return root
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// loadConfig returns the user config, or defaults when there is none.
func loadConfig() (*config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadFrom(path)
	if errors.Is(err, config.ErrConfigNotFound) {
		log.Printf("Config: no configuration file, using defaults")
		return config.DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func newRenderer(w io.Writer, cfg *config.Config) *report.Renderer {
	r := report.New(w, report.ThemeFor(cfg.Display.Theme))
	if width, _, err := term.GetSize(os.Stdout.Fd()); err == nil {
		r.Width = width
	}
	return r
}

func checkCmd() *cobra.Command {
	var (
		asJSON  bool
		advice  bool
		preview string
	)

	cmd := &cobra.Command{
		Use:   "check FOREGROUND BACKGROUND",
		Short: "Check the contrast of one color pair",
		Long: `Check the contrast ratio of a foreground color on a background color
against WCAG 2.x success criteria 1.4.3, 1.4.6 and 1.4.11.

Colors are "#RRGGBB" or "#RRGGBBAA"; the leading "#" may be omitted.
Exits with status 1 when the pair does not meet AA for normal text.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runCheck(cmd.OutOrStdout(), cfg, args[0], args[1], checkOptions{
				JSON:    asJSON,
				Advice:  advice || cfg.Display.ShowAdvice,
				Preview: preview,
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&advice, "advice", false, "Print a recommendation")
	cmd.Flags().StringVar(&preview, "text", "", "Preview text shown in the swatch")

	return cmd
}

type checkOptions struct {
	JSON    bool
	Advice  bool
	Preview string
}

func runCheck(w io.Writer, cfg *config.Config, fgText, bgText string, opts checkOptions) error {
	s := session.New(cfg.ToSessionOptions())
	fg, err := s.SetHex(session.Foreground, fgText)
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	bg, err := s.SetHex(session.Background, bgText)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	res, calcErr := s.Calculate()

	if opts.JSON {
		if err := report.WriteJSON(w, report.NewPairJSON("", fg, bg, res, calcErr)); err != nil {
			return err
		}
	} else {
		r := newRenderer(w, cfg)
		r.Preview = opts.Preview
		if calcErr != nil {
			fmt.Fprintln(w, r.Failure(calcErr.Error()))
		} else {
			fmt.Fprintln(w, r.Result(fg, bg, res))
			if opts.Advice {
				fmt.Fprintln(w)
				fmt.Fprintln(w, r.Advice(contrast.Recommend(res.Ratio)))
			}
		}
	}

	if calcErr != nil || !res.Passes() {
		return errNotPassing
	}
	return nil
}

func paletteCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "palette FILE",
		Short: "Check every pair of a palette file",
		Long: `Check every foreground/background pair listed in a palette file.

Palette files are TOML ([[pair]] tables) or YAML (a "pairs" list), each pair
with name, foreground and background keys. Exits with status 1 when any pair
does not meet AA for normal text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runPalette(cmd.OutOrStdout(), cfg, args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the results as JSON")

	return cmd
}

func runPalette(w io.Writer, cfg *config.Config, path string, asJSON bool) error {
	p, err := palette.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load palette: %w", err)
	}

	outcomes := p.Evaluate(cfg.Check.MinOpacity)
	if asJSON {
		if err := report.WriteJSON(w, report.OutcomesJSON(outcomes)); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(w, newRenderer(w, cfg).Outcomes(outcomes))
	}

	if len(palette.Failing(outcomes)) > 0 {
		return errNotPassing
	}
	return nil
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-check a palette file every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.OutOrStdout(), args[0])
		},
	}
}

func runWatch(w io.Writer, path string) error {
	cfgPath, err := resolveConfigPath()
	if err != nil {
		return err
	}
	manager, err := config.NewManager(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := manager.GetConfig()
	pw := newPaletteWatcher(w, path, newRenderer(w, cfg), cfg, notifierFor(cfg, os.Stderr))
	manager.OnReload(func(cfg *config.Config) {
		pw.configure(cfg, notifierFor(cfg, os.Stderr))
		pw.check()
	})

	if err := manager.StartWatching(ctx); err != nil {
		log.Printf("Config manager: not watching %s: %v", cfgPath, err)
	}
	defer manager.Stop()

	pw.check()
	if err := pw.start(ctx); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	defer pw.stop()

	fmt.Fprintf(w, "Watching %s (Ctrl+C to stop)\n", path)
	<-ctx.Done()
	return nil
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert HEX",
		Short: "Show a color as hex, HSV sliders and CSS rgba()",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := color.ParseHex(color.EnsureHashPrefix(args[0]))
			if err != nil {
				return err
			}
			printConversion(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func printConversion(w io.Writer, c color.Color) {
	h, s, v, a := c.Sliders()
	fmt.Fprintf(w, "hex:   %s\n", c.Hex())
	fmt.Fprintf(w, "hexa:  %s\n", c.HexAlpha())
	fmt.Fprintf(w, "hsv:   hue %d°, saturation %d, brightness %d, opacity %d\n", h, s, v, a)
	fmt.Fprintf(w, "rgba:  %s\n", c.CSSRGBA())
}

func pickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick colors interactively and check their contrast",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s := session.New(cfg.ToSessionOptions())
			if err := tui.Run(s, newRenderer(os.Stdout, cfg)); err != nil {
				return fmt.Errorf("interactive session error: %w", err)
			}
			return nil
		},
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.SaveTo(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file path",
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := resolveConfigPath()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
			},
		},
		initCmd,
	)

	return cmd
}
