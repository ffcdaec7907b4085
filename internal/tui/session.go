package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/leonardotrapani/colorcontrast/internal/report"
	"github.com/leonardotrapani/colorcontrast/internal/session"
)

// Action is an entry of the main menu
type Action string

const (
	ActionForegroundHex     Action = "fg_hex"
	ActionBackgroundHex     Action = "bg_hex"
	ActionForegroundSliders Action = "fg_sliders"
	ActionBackgroundSliders Action = "bg_sliders"
	ActionRecent            Action = "recent"
	ActionPreviewText       Action = "preview_text"
	ActionCalculate         Action = "calculate"
	ActionRecommendation    Action = "recommendation"
	ActionTheme             Action = "theme"
	ActionQuit              Action = "quit"
)

// Run drives s from a menu loop until the user quits.
func Run(s *session.Session, r *report.Renderer) error {
	var output string

	for {
		clearScreen()
		fmt.Println(Logo())
		fg, bg := s.Colors()
		ratio, ok := s.LastRatio()
		fmt.Println(formatStatus(fg, bg, ratio, ok))
		fmt.Println(r.Swatch(fg, bg, ""))
		fmt.Println()
		if output != "" {
			fmt.Println(output)
			fmt.Println()
		}

		action, err := selectAction(s, r)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		output, err = handle(action, s, r)
		if errors.Is(err, errQuit) {
			return nil
		}
		if errors.Is(err, huh.ErrUserAborted) {
			output = ""
			continue
		}
		if err != nil {
			output = StyleError.Render(err.Error())
		}
	}
}

var errQuit = errors.New("quit")

func handle(action Action, s *session.Session, r *report.Renderer) (string, error) {
	switch action {
	case ActionForegroundHex:
		return "", editHex(s, session.Foreground)
	case ActionBackgroundHex:
		return "", editHex(s, session.Background)
	case ActionForegroundSliders:
		return "", editSliders(s, session.Foreground)
	case ActionBackgroundSliders:
		return "", editSliders(s, session.Background)
	case ActionRecent:
		return "", pickRecent(s)
	case ActionPreviewText:
		return "", editPreviewText(r)
	case ActionCalculate:
		return calculate(s, r), nil
	case ActionRecommendation:
		return recommendation(s, r), nil
	case ActionTheme:
		r.SetTheme(r.Theme().Toggle())
		return StyleSuccess.Render(fmt.Sprintf("Switched to %s theme.", r.Theme().Name)), nil
	case ActionQuit:
		return "", errQuit
	}
	return "", nil
}

func calculate(s *session.Session, r *report.Renderer) string {
	result, err := s.Calculate()
	if err != nil {
		return r.Failure(err.Error())
	}
	fg, bg := s.Colors()
	return r.Result(fg, bg, result)
}

func recommendation(s *session.Session, r *report.Renderer) string {
	rec, err := s.Recommendation()
	if errors.Is(err, session.ErrNoRatio) {
		return StyleMuted.Render("No contrast ratio calculated yet.")
	}
	return r.Advice(rec)
}

func selectAction(s *session.Session, r *report.Renderer) (Action, error) {
	fg, bg := s.Colors()
	options := []huh.Option[Action]{
		huh.NewOption(formatHexLabel(session.Foreground, fg), ActionForegroundHex),
		huh.NewOption(formatHexLabel(session.Background, bg), ActionBackgroundHex),
		huh.NewOption(formatSlidersLabel(session.Foreground, fg), ActionForegroundSliders),
		huh.NewOption(formatSlidersLabel(session.Background, bg), ActionBackgroundSliders),
		huh.NewOption(formatRecentLabel(s.Recent()), ActionRecent),
		huh.NewOption(formatPreviewLabel(r.PreviewText()), ActionPreviewText),
		huh.NewOption("Calculate Contrast", ActionCalculate),
		huh.NewOption("Recommendation", ActionRecommendation),
		huh.NewOption(fmt.Sprintf("Theme (%s)", r.Theme().Name), ActionTheme),
		huh.NewOption("Quit", ActionQuit),
	}

	var selected Action
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Action]().
				Title("ColorContrast").
				Description("↑/↓ navigate • enter select • esc cancel").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

func editHex(s *session.Session, role session.Role) error {
	text := s.Color(role).Hex()
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(roleTitle(role)+" Hex").
				Description("#RRGGBB or #RRGGBBAA").
				Value(&text).
				Validate(validateHex),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}
	_, err := s.SetHex(role, text)
	return err
}

func editPreviewText(r *report.Renderer) error {
	text := r.PreviewText()
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Preview Text").
				Description("Shown in the color swatch. Leave empty for the default.").
				Value(&text),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}
	r.Preview = strings.TrimSpace(text)
	return nil
}

var sliderOrder = []session.Slider{session.Hue, session.Saturation, session.Brightness, session.Opacity}

func editSliders(s *session.Session, role session.Role) error {
	h, sat, v, a := s.Color(role).Sliders()
	start := []int{h, sat, v, a}
	values := make([]string, len(start))
	for i, n := range start {
		values[i] = fmt.Sprint(n)
	}

	fields := make([]huh.Field, 0, len(sliderOrder))
	for i, slider := range sliderOrder {
		fields = append(fields, huh.NewInput().
			Title(slider.String()).
			Description(sliderHelp(slider)).
			Value(&values[i]).
			Validate(sliderValidator(slider)))
	}

	form := huh.NewForm(huh.NewGroup(fields...).Title(roleTitle(role))).WithTheme(getTheme())
	if err := form.Run(); err != nil {
		return err
	}
	return applySliders(s, role, start, values)
}

// applySliders writes back only the sliders whose value moved from start.
// Slider positions are rounded, so rewriting an untouched one would shift
// the color.
func applySliders(s *session.Session, role session.Role, start []int, values []string) error {
	for i, slider := range sliderOrder {
		n, err := parseSlider(slider, values[i])
		if err != nil {
			return err
		}
		if n == start[i] {
			continue
		}
		s.SetSlider(role, slider, n)
	}
	return nil
}

func pickRecent(s *session.Session) error {
	recent := s.Recent()
	if len(recent) == 0 {
		return nil
	}

	colorOptions := make([]huh.Option[int], 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		c := recent[i]
		swatch := lipgloss.NewStyle().Background(c.Lipgloss()).Render("    ")
		colorOptions = append(colorOptions, huh.NewOption(swatch+" "+c.Hex(), i))
	}

	var (
		role  session.Role
		index int
	)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[session.Role]().
				Title("Apply to").
				Options(
					huh.NewOption("Foreground", session.Foreground),
					huh.NewOption("Background", session.Background),
				).
				Value(&role),
			huh.NewSelect[int]().
				Title("Recent Colors").
				Options(colorOptions...).
				Value(&index),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}
	s.Set(role, recent[index])
	return nil
}

// clearScreen clears the terminal screen
func clearScreen() {
	output := termenv.NewOutput(os.Stdout)
	output.ClearScreen()
}
