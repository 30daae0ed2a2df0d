package interpret

import (
	"context"

	"vedic-astro/internal/errors"
	"vedic-astro/internal/models"
)

// Interpreter narrates computed charts through an LLM. A nil client is a
// valid state: every method then fails with ErrNotConfigured so the rest of
// the application keeps working without a key.
type Interpreter struct {
	client LLMClient
}

// NewInterpreter creates an interpreter backed by the given client, which
// may be nil when no API key is configured.
func NewInterpreter(client LLMClient) *Interpreter {
	return &Interpreter{client: client}
}

// Configured reports whether an LLM client is available.
func (i *Interpreter) Configured() bool {
	return i.client != nil
}

func (i *Interpreter) complete(ctx context.Context, op, prompt string) (string, error) {
	if i.client == nil {
		return "", errors.NewInterpreterError(op, errors.ErrNotConfigured)
	}
	text, err := i.client.CompleteWithSystem(ctx, systemPrompt, prompt)
	if err != nil {
		return "", errors.NewInterpreterError(op, err)
	}
	return text, nil
}

// ChartOverview generates an overall personality and life path reading.
func (i *Interpreter) ChartOverview(ctx context.Context, chart *models.Chart) (string, error) {
	return i.complete(ctx, "overview", chartOverviewPrompt(chart))
}

// DashaPeriod interprets one Vimshottari ruling period in the context of
// the chart.
func (i *Interpreter) DashaPeriod(ctx context.Context, period models.DashaPeriod, chart *models.Chart) (string, error) {
	return i.complete(ctx, "dasha", dashaPrompt(period, chart))
}

// Yogas interprets the detected combinations. An empty report short-circuits
// without calling the LLM.
func (i *Interpreter) Yogas(ctx context.Context, report *models.YogaReport) (string, error) {
	if report == nil || report.Total == 0 {
		return "No significant yogas detected in this chart. This doesn't mean a bad chart - " +
			"it simply means no classical yoga combinations are present.", nil
	}
	return i.complete(ctx, "yogas", yogaPrompt(report.Yogas))
}

// DivisionalChart interprets one varga.
func (i *Interpreter) DivisionalChart(ctx context.Context, dc *models.DivisionalChart) (string, error) {
	return i.complete(ctx, "varga", vargaPrompt(dc))
}

// Answer answers a free-form question about the chart.
func (i *Interpreter) Answer(ctx context.Context, question string, chart *models.Chart) (string, error) {
	if question == "" {
		return "", errors.NewInterpreterError("question", errors.NewValidationError("question", question, "must not be empty"))
	}
	return i.complete(ctx, "question", questionPrompt(question, chart))
}

// CareerGuidance generates career guidance from the chart.
func (i *Interpreter) CareerGuidance(ctx context.Context, chart *models.Chart) (string, error) {
	return i.complete(ctx, "career", careerPrompt(chart))
}

// Remedies suggests remedies, optionally focused on a specific issue.
func (i *Interpreter) Remedies(ctx context.Context, chart *models.Chart, specificIssue string) (string, error) {
	return i.complete(ctx, "remedies", remedyPrompt(chart, specificIssue))
}
