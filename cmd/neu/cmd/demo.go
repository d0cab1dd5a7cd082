package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/neu-ui/neu/cmd/neu/internal/config"
	"github.com/neu-ui/neu/pkg/graphics"
	"github.com/neu-ui/neu/pkg/style"
	"github.com/neu-ui/neu/pkg/surface"
	"github.com/neu-ui/neu/pkg/theme"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Explore computed styles interactively",
	Long: `Demo opens a terminal explorer: toggle the interaction flags and
scrub scroll progress while watching the computed transform and
box-shadow values update.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	r, err := loadProfile()
	if err != nil {
		return err
	}

	themes := theme.NewController(r.Brightness)
	themes.SetPalette(theme.BrightnessLight, r.Light)
	themes.SetPalette(theme.BrightnessDark, r.Dark)

	m := demoModel{resolved: r, themes: themes, visible: true}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// progressStep is how far one arrow keypress scrubs scroll progress.
const progressStep = 0.05

type demoModel struct {
	resolved *config.Resolved
	themes   *theme.Controller

	pressed  bool
	hovered  bool
	visible  bool
	progress float64
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "p":
		m.pressed = !m.pressed
	case "h":
		m.hovered = !m.hovered
	case "v":
		m.visible = !m.visible
	case "t":
		m.themes.Toggle()
	case "left":
		m.progress -= progressStep
		if m.progress < 0 {
			m.progress = 0
		}
	case "right":
		m.progress += progressStep
		if m.progress > 1 {
			m.progress = 1
		}
	}
	return m, nil
}

var (
	demoTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	demoPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginRight(2)

	demoLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	demoHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			MarginTop(1)
)

func (m demoModel) View() string {
	palette := m.themes.Palette()

	button := surface.ButtonStyle(surface.ButtonState{
		Pressed: m.pressed, Visible: m.visible, Progress: m.progress,
	}, m.resolved.Variant, palette)

	cardState := surface.CardState{
		Pressed: m.pressed, Hovered: m.hovered,
		Visible: m.visible, Progress: m.progress,
	}
	press := surface.CardPressStyle(cardState, palette)
	hover := surface.CardHoverStyle(cardState, palette)

	header := demoTitleStyle.Render("neu style explorer")
	state := fmt.Sprintf("theme:%s  variant:%s  pressed:%t  hovered:%t  visible:%t  progress:%s",
		m.themes.Brightness(), m.resolved.Variant, m.pressed, m.hovered, m.visible,
		graphics.FormatNumber(m.progress))

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		demoPanelStyle.Render(stylePanel("button", button)),
		demoPanelStyle.Render(stylePanel("card / press", press)),
		demoPanelStyle.Render(stylePanel("card / hover", hover)),
	)

	help := demoHelpStyle.Render("p press  h hover  v visible  t theme  ←/→ progress  q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, state, "", panels, help)
}

func stylePanel(title string, s style.Style) string {
	body := demoLabelStyle.Render(title) + "\n"
	for _, d := range s.Declarations() {
		body += fmt.Sprintf("%s: %s\n", d.Property, d.Value)
	}
	return body
}
