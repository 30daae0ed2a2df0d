package interpret

import (
	"fmt"
	"strings"

	"vedic-astro/internal/models"
)

// systemPrompt frames every completion request.
const systemPrompt = "You are an expert Vedic astrologer with deep knowledge of classical texts " +
	"like BPHS, Jaimini, and Phaladeepika. Provide insightful, practical, and encouraging interpretations."

// chartOverviewPrompt builds the prompt for an overall chart reading.
func chartOverviewPrompt(chart *models.Chart) string {
	var b strings.Builder
	b.WriteString("Analyze this birth chart and provide a comprehensive personality and life path overview.\n\n")
	b.WriteString("Birth Chart Data:\n")

	if asc, ok := chart.Position(models.Ascendant); ok {
		fmt.Fprintf(&b, "- Ascendant (Lagna): %s", asc.Sign)
		if asc.Nakshatra != nil {
			fmt.Fprintf(&b, ", %s nakshatra", asc.Nakshatra.Name)
		}
		b.WriteString("\n")
	}
	for _, planet := range models.Grahas {
		pos, ok := chart.Position(planet)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s sign", planet, pos.Sign)
		if pos.Nakshatra != nil {
			fmt.Fprintf(&b, ", %s nakshatra", pos.Nakshatra.Name)
		}
		b.WriteString("\n")
	}
	if cur := chart.Dasha.Current; cur != nil {
		fmt.Fprintf(&b, "- Currently in %s Mahadasha\n", cur.Lord)
	}

	b.WriteString(`
Please provide:
1. Overall personality traits based on the Ascendant and Moon sign
2. Key strengths and challenges indicated by planetary positions
3. Life purpose and career inclinations based on planetary placements
4. Important life themes based on the current dasha period

Keep the interpretation insightful, practical, and encouraging. Focus on growth opportunities rather than just predictions. Use Vedic astrology principles.`)
	return b.String()
}

// dashaPrompt builds the prompt for one Vimshottari period reading.
func dashaPrompt(period models.DashaPeriod, chart *models.Chart) string {
	var b strings.Builder
	b.WriteString("Interpret the Vimshottari Mahadasha period for this person.\n\n")
	b.WriteString("Dasha Details:\n")
	fmt.Fprintf(&b, "- Planet: %s Mahadasha\n", period.Lord)
	fmt.Fprintf(&b, "- Duration: %s to %s (%d years)\n",
		period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"), period.Years)
	if pos, ok := chart.Position(period.Lord); ok {
		fmt.Fprintf(&b, "- %s's placement: %s sign", period.Lord, pos.Sign)
		if pos.Nakshatra != nil {
			fmt.Fprintf(&b, ", %s nakshatra", pos.Nakshatra.Name)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, `
Please explain:
1. What themes and experiences are likely during this %[1]s Mahadasha
2. Areas of life that will be emphasized
3. Opportunities and challenges specific to this period
4. How to make the most of this dasha period
5. What to focus on for growth and success

Be practical and encouraging. Focus on actionable insights using Vedic dasha principles.`, period.Lord)
	return b.String()
}

// yogaPrompt builds the prompt for interpreting detected yogas.
func yogaPrompt(yogas []models.Yoga) string {
	var b strings.Builder
	b.WriteString("Interpret these planetary yogas (combinations) found in the birth chart.\n\n")
	b.WriteString("Yogas Present:\n")
	for _, y := range yogas {
		fmt.Fprintf(&b, "- %s: %s\n", y.Name, y.Description)
	}

	b.WriteString(`
For each yoga, please explain:
1. What this yoga signifies in practical terms
2. How it manifests in the person's life
3. How to activate and maximize the benefits of this yoga
4. Any timing considerations for when these yogas become most active

Keep interpretations grounded and actionable. Use Vedic astrology principles.`)
	return b.String()
}

// vargaPrompt builds the prompt for one divisional chart reading.
func vargaPrompt(dc *models.DivisionalChart) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Interpret this divisional chart (%s).\n\n", dc.Type)
	fmt.Fprintf(&b, "Chart Type: %s\n", dc.Type)
	fmt.Fprintf(&b, "Signification: %s\n\n", dc.Signification)
	b.WriteString("Planetary Positions:\n")
	for _, planet := range models.Grahas {
		if pos, ok := dc.Positions[planet]; ok {
			fmt.Fprintf(&b, "%s: %s\n", planet, pos.Sign)
		}
	}

	fmt.Fprintf(&b, `
Please analyze:
1. What this divisional chart reveals about %s
2. Key strengths indicated by benefic planets in good positions
3. Challenges or areas needing attention
4. Practical guidance based on this analysis

Keep it insightful and actionable. Use Vedic divisional chart principles.`, strings.ToLower(dc.Signification))
	return b.String()
}

// questionPrompt builds the prompt for answering a free-form question.
func questionPrompt(question string, chart *models.Chart) string {
	var b strings.Builder
	b.WriteString("Answer this question about the person's birth chart.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\n", question)
	b.WriteString("Birth Chart Summary:\n")
	b.WriteString(chartSummary(chart))

	b.WriteString(`
Please provide:
1. A direct answer to the question based on Vedic astrology principles
2. Which planetary positions or combinations are relevant to this question
3. Practical guidance or recommendations
4. Any timing considerations (based on current dasha or transits if relevant)

Be specific, practical, and encouraging. Use Vedic astrology principles to provide insightful guidance.`)
	return b.String()
}

// careerPrompt builds the prompt for career guidance.
func careerPrompt(chart *models.Chart) string {
	var b strings.Builder
	b.WriteString("Provide career guidance based on this birth chart.\n\n")
	b.WriteString("Key Career Indicators:\n")
	if asc, ok := chart.Position(models.Ascendant); ok {
		fmt.Fprintf(&b, "- Ascendant: %s\n", asc.Sign)
	}
	indicators := []struct {
		planet models.Planet
		theme  string
	}{
		{models.Sun, "authority, leadership"},
		{models.Mercury, "communication, business"},
		{models.Jupiter, "wisdom, teaching"},
		{models.Saturn, "discipline, hard work"},
	}
	for _, ind := range indicators {
		if pos, ok := chart.Position(ind.planet); ok {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", ind.planet, pos.Sign, ind.theme)
		}
	}

	b.WriteString(`
Please provide:
1. Career fields most suitable based on planetary positions
2. Natural talents and skills indicated by the chart
3. Best approach to career growth (entrepreneurship vs employment)
4. Potential challenges in career and how to overcome them
5. Timing for career changes or advancement (based on dasha if available)

Be specific and practical. Use Vedic astrology career analysis principles.`)
	return b.String()
}

// remedyPrompt builds the prompt for remedy suggestions.
func remedyPrompt(chart *models.Chart, specificIssue string) string {
	var b strings.Builder
	b.WriteString("Suggest practical remedies based on this birth chart")
	if specificIssue != "" {
		fmt.Fprintf(&b, " specifically for: %s", specificIssue)
	}
	b.WriteString(".\n\nChart Overview:\n")
	b.WriteString(chartSummary(chart))

	b.WriteString(`
Please suggest:
1. Gemstones that could be beneficial (if any, with cautions)
2. Mantras or prayers aligned with beneficial planets
3. Charitable activities (daan) for difficult planetary positions
4. Lifestyle recommendations based on Ascendant and Moon
5. Days and times favorable for important activities

Keep remedies practical, accessible, and grounded in Vedic tradition. Avoid overly superstitious suggestions.`)
	return b.String()
}

// chartSummary renders the brief chart header shared by several prompts.
func chartSummary(chart *models.Chart) string {
	var b strings.Builder
	if asc, ok := chart.Position(models.Ascendant); ok {
		fmt.Fprintf(&b, "Ascendant: %s\n", asc.Sign)
	}
	if sun, ok := chart.Position(models.Sun); ok {
		fmt.Fprintf(&b, "Sun: %s\n", sun.Sign)
	}
	if moon, ok := chart.Position(models.Moon); ok {
		fmt.Fprintf(&b, "Moon: %s", moon.Sign)
		if moon.Nakshatra != nil {
			fmt.Fprintf(&b, " (%s nakshatra)", moon.Nakshatra.Name)
		}
		b.WriteString("\n")
	}
	if cur := chart.Dasha.Current; cur != nil {
		fmt.Fprintf(&b, "Current Mahadasha: %s\n", cur.Lord)
	}
	return b.String()
}
