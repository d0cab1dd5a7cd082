package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neu-ui/neu/pkg/css"
	"github.com/neu-ui/neu/pkg/style"
	"github.com/neu-ui/neu/pkg/surface"
)

var (
	renderTheme    string
	renderVariant  string
	renderPressed  bool
	renderHovered  bool
	renderHidden   bool
	renderProgress float64
	renderJSON     bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Compute surface styles and print them as CSS",
	Long: `Render computes the button and card styles for one interaction
state and prints a stylesheet. Use --json for machine-readable output.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderTheme, "theme", "", "light or dark (overrides profile)")
	renderCmd.Flags().StringVar(&renderVariant, "variant", "", "button variant: default or subtle (overrides profile)")
	renderCmd.Flags().BoolVar(&renderPressed, "pressed", false, "compute the pressed state")
	renderCmd.Flags().BoolVar(&renderHovered, "hovered", false, "compute the hovered state")
	renderCmd.Flags().BoolVar(&renderHidden, "hidden", false, "compute the not-yet-visible state")
	renderCmd.Flags().Float64Var(&renderProgress, "progress", 0, "scroll progress in [0,1]")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "emit JSON instead of CSS")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	r, err := loadProfile()
	if err != nil {
		return err
	}
	if err := overrideBrightness(r, renderTheme); err != nil {
		return err
	}
	if err := overrideVariant(r, renderVariant); err != nil {
		return err
	}
	if renderProgress < 0 || renderProgress > 1 {
		return fmt.Errorf("progress %v out of range [0,1]", renderProgress)
	}

	palette := r.Palette()
	visible := !renderHidden

	buttonState := surface.ButtonState{Pressed: renderPressed, Visible: visible, Progress: renderProgress}
	cardState := surface.CardState{Pressed: renderPressed, Hovered: renderHovered, Visible: visible, Progress: renderProgress}

	log.Debug().
		Str("theme", r.Brightness.String()).
		Str("variant", r.Variant.String()).
		Float64("progress", renderProgress).
		Msg("computing styles")

	var sheet css.Stylesheet
	sheet.Add(css.RuleFor(".neu-button", surface.ButtonStyle(buttonState, r.Variant, palette))).
		Add(css.RuleFor(".neu-button__content", surface.ContentStyle(visible))).
		Add(css.RuleFor(".neu-card", surface.CardPressStyle(cardState, palette))).
		Add(css.RuleFor(".neu-card--hover", surface.CardHoverStyle(cardState, palette)))

	if renderJSON {
		return printJSON(cmd, sheet)
	}
	fmt.Fprint(cmd.OutOrStdout(), sheet.String())
	return nil
}

func printJSON(cmd *cobra.Command, sheet css.Stylesheet) error {
	type jsonRule struct {
		Selector     string              `json:"selector"`
		Declarations []style.Declaration `json:"declarations"`
	}
	rules := make([]jsonRule, len(sheet.Rules))
	for i, r := range sheet.Rules {
		rules[i] = jsonRule{Selector: r.Selector, Declarations: r.Decls}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(rules)
}
