package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"vedic-astro/internal/chart"
	"vedic-astro/internal/errors"
	"vedic-astro/internal/logging"
	"vedic-astro/internal/models"
	"vedic-astro/internal/varga"
)

// Accepted layouts for the --time flag.
var birthTimeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// addChartCommands adds the chart computation commands.
func addChartCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newChartCmd(app))
	rootCmd.AddCommand(newVargasCmd(app))
}

// addAnalysisCommands adds the dasha and yoga commands.
func addAnalysisCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newDashaCmd(app))
	rootCmd.AddCommand(newYogasCmd(app))
}

// addBirthFlags registers the flags shared by every command that needs a
// chart: either birth data to compute one, or --from to load a snapshot.
func addBirthFlags(cmd *cobra.Command, app *App) {
	cmd.Flags().String("name", "", "name of the person")
	cmd.Flags().String("time", "", `birth date and time, e.g. "1990-06-15 10:30"`)
	cmd.Flags().String("tz", "UTC", "IANA time zone of the birth time")
	cmd.Flags().Float64("lat", app.Config.Chart.DefaultLatitude, "birth latitude in decimal degrees")
	cmd.Flags().Float64("lon", app.Config.Chart.DefaultLongitude, "birth longitude in decimal degrees")
	cmd.Flags().String("from", "", "load a saved snapshot by name instead of computing")
}

// parseBirthTime parses the --time value in the given zone and converts it
// to UTC for the ephemeris.
func parseBirthTime(value, tzName string) (time.Time, error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return time.Time{}, errors.NewValidationError("tz", tzName, "unknown time zone")
	}
	for _, layout := range birthTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.NewValidationError("time", value, `expected "2006-01-02 15:04"`)
}

// resolveChart produces the chart a command operates on: a stored snapshot
// when --from is set, a freshly computed chart otherwise.
func (app *App) resolveChart(cmd *cobra.Command) (*models.Chart, error) {
	from, _ := cmd.Flags().GetString("from")
	if from != "" {
		if app.Store == nil {
			return nil, errors.Wrap(errors.ErrDatabaseError, "snapshot store unavailable")
		}
		snap, err := app.Store.Load(cmd.Context(), from)
		if err != nil {
			return nil, err
		}
		return snap.Chart, nil
	}

	timeValue, _ := cmd.Flags().GetString("time")
	if timeValue == "" {
		return nil, errors.Wrap(errors.ErrNoChart, "provide --time or --from")
	}
	tzName, _ := cmd.Flags().GetString("tz")
	birthTime, err := parseBirthTime(timeValue, tzName)
	if err != nil {
		return nil, err
	}

	name, _ := cmd.Flags().GetString("name")
	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")

	ctx := logging.WithLogger(cmd.Context(), app.Logger)
	return app.Assembler.Compute(ctx, chart.Input{
		Name:      name,
		BirthTime: birthTime,
		Latitude:  lat,
		Longitude: lon,
	})
}

func newChartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Compute and display a sidereal birth chart",
		Long: `Compute a sidereal (Lahiri ayanamsa) birth chart: planetary placements
with nakshatras, whole-sign houses, and the current Vimshottari mahadasha.`,
		Example: `  astro chart --name "Asha" --time "1990-06-15 10:30" --tz Asia/Kolkata --lat 28.6139 --lon 77.2090
  astro chart --from "Asha" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.resolveChart(cmd)
			if err != nil {
				return err
			}

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(c)
			}
			renderChart(output, c, app.Config.UI.DateFormat)
			return nil
		},
	}
	addBirthFlags(cmd, app)
	return cmd
}

func newVargasCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vargas",
		Short: "Compute divisional charts",
		Long: `Remap the birth chart into divisional charts (vargas). Supported types:
` + strings.Join(varga.SupportedTypes(), ", ") + `.`,
		Example: `  astro vargas --time "1990-06-15 10:30" --types D9,D10
  astro vargas --from "Asha"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.resolveChart(cmd)
			if err != nil {
				return err
			}

			typesValue, _ := cmd.Flags().GetString("types")
			chartTypes := app.Config.Chart.DefaultVargas
			if typesValue != "" {
				chartTypes = nil
				for _, t := range strings.Split(typesValue, ",") {
					chartTypes = append(chartTypes, strings.ToUpper(strings.TrimSpace(t)))
				}
			}
			// The render loop below walks chartTypes, so the fallback has to
			// be resolved here rather than inside ComputeCharts.
			if len(chartTypes) == 0 {
				chartTypes = varga.DefaultTypes
			}

			charts, err := varga.ComputeCharts(c.Positions, chartTypes)
			if err != nil {
				return err
			}

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(charts)
			}
			for i, chartType := range chartTypes {
				if i > 0 {
					output.Println()
				}
				renderVarga(output, charts[chartType])
			}
			return nil
		},
	}
	addBirthFlags(cmd, app)
	cmd.Flags().String("types", "", "comma-separated divisional chart types (e.g. D9,D10,D60)")
	return cmd
}

func newDashaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dasha",
		Short: "Show the Vimshottari dasha schedule",
		Long: `Display the full 120-year Vimshottari mahadasha cycle anchored to the
Moon's nakshatra lord at birth, with the running period marked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.resolveChart(cmd)
			if err != nil {
				return err
			}

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(c.Dasha)
			}
			renderDasha(output, c.Dasha, app.Config.UI.DateFormat)
			return nil
		},
	}
	addBirthFlags(cmd, app)
	return cmd
}

func newYogasCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yogas",
		Short: "Detect classical yogas in the chart",
		Long:  "Run the classical combination rules (Raja, Dhana, Gaja Kesari, Mahapurusha, Neecha Bhanga, Budhaditya, Chandra Mangala) over the chart.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.resolveChart(cmd)
			if err != nil {
				return err
			}

			report := app.Detector.Detect(c)
			logging.LogYogaReport(app.Logger, report.Total)

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(report)
			}
			renderYogas(output, report)
			return nil
		},
	}
	addBirthFlags(cmd, app)
	return cmd
}
