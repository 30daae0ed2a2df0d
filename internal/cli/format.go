package cli

import (
	"fmt"
	"math"

	"vedic-astro/internal/models"
)

// FormatCoordinate renders a decimal-degree coordinate as d°m' with a
// hemisphere suffix.
func FormatCoordinate(value float64, isLatitude bool) string {
	suffix := "E"
	if isLatitude {
		suffix = "N"
		if value < 0 {
			suffix = "S"
		}
	} else if value < 0 {
		suffix = "W"
	}

	abs := math.Abs(value)
	degrees := int(abs)
	minutes := int((abs - float64(degrees)) * 60)
	return fmt.Sprintf("%d°%d'%s", degrees, minutes, suffix)
}

// houseOf returns the whole-sign house a placement falls in, or 0 when the
// chart carries no house list.
func houseOf(pos models.CelestialPosition, houses []models.House) int {
	for _, h := range houses {
		if h.SignNum == pos.SignNum {
			return h.Number
		}
	}
	return 0
}

// renderChart prints the rasi chart: header, placements table, and the
// current mahadasha line.
func renderChart(output *Output, c *models.Chart, dateFormat string) {
	if c.Name != "" {
		output.Bold("Birth Chart: %s", c.Name)
	} else {
		output.Bold("Birth Chart")
	}
	output.Printf("Born: %s UTC at %s, %s\n",
		c.BirthTime.Format(dateFormat+" 15:04"),
		FormatCoordinate(c.Location.Latitude, true),
		FormatCoordinate(c.Location.Longitude, false))
	output.Dim("Ayanamsa (Lahiri): %.4f°", c.Ayanamsa)
	output.Println()

	table := NewTable(output, "Body", "Sign", "Degree", "Nakshatra", "Pada", "House")
	order := append([]models.Planet{models.Ascendant}, models.Grahas...)
	for _, planet := range order {
		pos, ok := c.Position(planet)
		if !ok {
			continue
		}
		nakName, pada := "", ""
		if pos.Nakshatra != nil {
			nakName = pos.Nakshatra.Name
			pada = fmt.Sprintf("%d", pos.Nakshatra.Pada)
		}
		house := ""
		if h := houseOf(pos, c.Houses); h > 0 {
			house = fmt.Sprintf("%d", h)
		}
		table.AddRow(string(planet), pos.Sign, pos.DegreeFormatted, nakName, pada, house)
	}
	table.Render()

	if cur := c.Dasha.Current; cur != nil {
		output.Println()
		output.Info("Current Mahadasha: %s (%s to %s)",
			cur.Lord, cur.Start.Format(dateFormat), cur.End.Format(dateFormat))
	}
}

// renderVarga prints one divisional chart.
func renderVarga(output *Output, dc *models.DivisionalChart) {
	output.Bold("%s - %s", dc.Type, dc.Name)
	output.Dim("%s", dc.Signification)

	table := NewTable(output, "Body", "Sign", "Degree")
	order := append([]models.Planet{models.Ascendant}, models.Grahas...)
	for _, planet := range order {
		pos, ok := dc.Positions[planet]
		if !ok {
			continue
		}
		table.AddRow(string(planet), pos.Sign, pos.DegreeFormatted)
	}
	table.Render()
}

// renderDasha prints the full Vimshottari schedule, marking the period the
// evaluation moment falls in.
func renderDasha(output *Output, schedule models.DashaSchedule, dateFormat string) {
	output.Bold("%s Dasha Schedule", schedule.System)
	output.Println()

	table := NewTable(output, "", "Lord", "From", "To", "Years")
	for _, p := range schedule.Periods {
		marker := ""
		if schedule.Current != nil && p.Lord == schedule.Current.Lord && p.Start.Equal(schedule.Current.Start) {
			marker = output.Green(">")
		}
		table.AddRow(marker, string(p.Lord),
			p.Start.Format(dateFormat), p.End.Format(dateFormat),
			fmt.Sprintf("%d", p.Years))
	}
	table.Render()

	if schedule.Current == nil {
		output.Println()
		output.Warning("The evaluation date falls outside the 120-year cycle.")
	}
}

// renderYogas prints the yoga report.
func renderYogas(output *Output, report *models.YogaReport) {
	if report.Total == 0 {
		output.Println("No classical yoga combinations detected in this chart.")
		return
	}

	output.Bold("Detected Yogas: %d", report.Total)
	output.Println()
	for _, y := range report.Yogas {
		output.Printf("%s  [%s]  %s\n", output.BoldText(y.Name), y.Type, output.StrengthText(y.Strength))
		output.Printf("  %s\n", y.Description)
		if y.Effects != "" {
			output.Dim("  %s", y.Effects)
		}
		output.Println()
	}
}
