package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"vedic-astro/internal/errors"
	"vedic-astro/internal/logging"
	"vedic-astro/internal/varga"
)

// addInterpretCommands adds the AI interpretation commands.
func addInterpretCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newInterpretCmd(app))
	rootCmd.AddCommand(newAskCmd(app))
}

// runInterpretation executes one interpreter call with timing and shared
// error handling.
func (app *App) runInterpretation(cmd *cobra.Command, kind string, fn func() (string, error)) error {
	output := NewOutput(cmd)
	if !app.Interpreter.Configured() {
		output.Warning("No OpenAI API key configured.")
		output.Println("Set openai.api_key in credentials.toml or export OPENAI_API_KEY.")
		output.Dim("The astrological calculations work without a key - only AI narration needs one.")
		return errors.ErrNotConfigured
	}

	started := time.Now()
	text, err := fn()
	logging.LogInterpretation(app.Logger, kind, time.Since(started), err)
	if err != nil {
		return err
	}

	if output.IsJSON() {
		return output.JSON(map[string]string{"kind": kind, "interpretation": text})
	}
	output.Println(text)
	return nil
}

func newInterpretCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "interpret [overview|career|remedies|yogas|dasha|varga]",
		Short:     "Generate an AI interpretation of the chart",
		ValidArgs: []string{"overview", "career", "remedies", "yogas", "dasha", "varga"},
		Args:      cobra.MaximumNArgs(1),
		Example: `  astro interpret overview --from "Asha"
  astro interpret career --time "1990-06-15 10:30" --lat 28.61 --lon 77.21
  astro interpret remedies --from "Asha" --issue "career stagnation"
  astro interpret varga --from "Asha" --type D9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "overview"
			if len(args) > 0 {
				kind = strings.ToLower(args[0])
			}

			c, err := app.resolveChart(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			switch kind {
			case "overview":
				return app.runInterpretation(cmd, kind, func() (string, error) {
					return app.Interpreter.ChartOverview(ctx, c)
				})
			case "career":
				return app.runInterpretation(cmd, kind, func() (string, error) {
					return app.Interpreter.CareerGuidance(ctx, c)
				})
			case "remedies":
				issue, _ := cmd.Flags().GetString("issue")
				return app.runInterpretation(cmd, kind, func() (string, error) {
					return app.Interpreter.Remedies(ctx, c, issue)
				})
			case "yogas":
				report := app.Detector.Detect(c)
				return app.runInterpretation(cmd, kind, func() (string, error) {
					return app.Interpreter.Yogas(ctx, report)
				})
			case "dasha":
				if c.Dasha.Current == nil {
					return errors.Wrap(errors.ErrNoChart, "no running dasha period to interpret")
				}
				return app.runInterpretation(cmd, kind, func() (string, error) {
					return app.Interpreter.DashaPeriod(ctx, *c.Dasha.Current, c)
				})
			case "varga":
				chartType, _ := cmd.Flags().GetString("type")
				chartType = strings.ToUpper(chartType)
				dc, err := varga.ComputeChart(chartType, c.Positions)
				if err != nil {
					return err
				}
				return app.runInterpretation(cmd, kind, func() (string, error) {
					return app.Interpreter.DivisionalChart(ctx, dc)
				})
			default:
				return errors.NewValidationError("kind", kind, "unknown interpretation type")
			}
		},
	}
	addBirthFlags(cmd, app)
	cmd.Flags().String("issue", "", "specific issue for remedy suggestions")
	cmd.Flags().String("type", "D9", "divisional chart type for 'interpret varga'")
	return cmd
}

func newAskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a free-form question about the chart",
		Args:  cobra.MinimumNArgs(1),
		Example: `  astro ask "When will my career improve?" --from "Asha"
  astro ask "What does my Moon placement mean?" --time "1990-06-15 10:30"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.resolveChart(cmd)
			if err != nil {
				return err
			}

			question := strings.Join(args, " ")
			return app.runInterpretation(cmd, "question", func() (string, error) {
				return app.Interpreter.Answer(cmd.Context(), question, c)
			})
		},
	}
	addBirthFlags(cmd, app)
	return cmd
}
