package queries

import (
	"context"
	"time"

	analytics "github.com/ariahq/aria/internal/analytics/domain"
	"github.com/ariahq/aria/internal/shared/infrastructure/cache"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// GetCorrelationQuery requests the mood-productivity correlation report over
// the trailing N days.
type GetCorrelationQuery struct {
	Days int
}

// GetCorrelationHandler handles the GetCorrelationQuery with a cache-aside
// read path.
type GetCorrelationHandler struct {
	aggregator *Aggregator
	cache      cache.Cache
	now        func() time.Time
	ttl        time.Duration
}

// NewGetCorrelationHandler creates a new GetCorrelationHandler.
func NewGetCorrelationHandler(aggregator *Aggregator, c cache.Cache, now func() time.Time, ttl time.Duration) *GetCorrelationHandler {
	if now == nil {
		now = time.Now
	}
	return &GetCorrelationHandler{aggregator: aggregator, cache: c, now: now, ttl: ttl}
}

// Handle assembles the report. A nil coefficient is reported as insufficient
// data, never as zero correlation.
func (h *GetCorrelationHandler) Handle(ctx context.Context, query GetCorrelationQuery) (*analytics.CorrelationReport, error) {
	key := cache.KeyCorrelation(query.Days)

	var cached analytics.CorrelationReport
	if cache.GetJSON(ctx, h.cache, key, &cached) {
		return &cached, nil
	}

	today := domain.DayOf(h.now())
	days, err := h.aggregator.BuildRange(ctx, today.AddDate(0, 0, -(query.Days-1)), today)
	if err != nil {
		return nil, err
	}

	report := buildCorrelationReport(query.Days, days)
	cache.SetJSON(ctx, h.cache, key, report, h.ttl)
	return report, nil
}

func buildCorrelationReport(windowDays int, days []*analytics.DailyAggregate) *analytics.CorrelationReport {
	var pairedMood, pairedProductivity []float64
	var highMoodDays, mediumMoodDays, lowMoodDays []float64
	for _, day := range days {
		if !day.HasMood() || !day.HasProductivity() {
			continue
		}
		pairedMood = append(pairedMood, *day.MoodScore)
		pairedProductivity = append(pairedProductivity, *day.ProductivityScore)
		switch {
		case *day.MoodScore >= 7:
			highMoodDays = append(highMoodDays, *day.ProductivityScore)
		case *day.MoodScore < 5:
			lowMoodDays = append(lowMoodDays, *day.ProductivityScore)
		default:
			mediumMoodDays = append(mediumMoodDays, *day.ProductivityScore)
		}
	}

	report := &analytics.CorrelationReport{
		Days:                   windowDays,
		Coefficient:            analytics.Pearson(pairedMood, pairedProductivity),
		SampleSize:             len(pairedMood),
		HighMoodProductivity:   analytics.MeanOf(highMoodDays),
		MediumMoodProductivity: analytics.MeanOf(mediumMoodDays),
		LowMoodProductivity:    analytics.MeanOf(lowMoodDays),
		HighMoodDays:           len(highMoodDays),
		LowMoodDays:            len(lowMoodDays),
	}
	report.Strength, report.Direction = analytics.DescribeCorrelation(report.Coefficient)
	report.Insight = correlationInsight(report)
	return report
}

// correlationInsight summarizes the high/low band gap when both bands have
// data and the gap is wide enough to mean anything.
func correlationInsight(r *analytics.CorrelationReport) string {
	if r.HighMoodProductivity == nil || r.LowMoodProductivity == nil {
		return ""
	}
	switch {
	case *r.HighMoodProductivity > *r.LowMoodProductivity+10:
		return "significantly more productive on high mood days"
	case *r.LowMoodProductivity > *r.HighMoodProductivity+10:
		return "more productive on low mood days"
	default:
		return "mood does not strongly affect productivity"
	}
}
