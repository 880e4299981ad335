package domain

import (
	"time"
)

// DailyAggregate is the unit read model every wider window is built from.
// Pointer fields are nil when the day has no data for that metric, which is
// different from a recorded zero.
type DailyAggregate struct {
	Date time.Time `json:"date"`

	TasksPlanned   int     `json:"tasks_planned"`
	TasksCompleted int     `json:"tasks_completed"`
	CompletionRate float64 `json:"completion_rate"`

	// FocusHours is the sum of tracked session time, not the estimate the
	// productivity score uses.
	FocusHours float64 `json:"focus_hours"`

	ProductivityScore *float64 `json:"productivity_score,omitempty"`
	MoodScore         *float64 `json:"mood_score,omitempty"`

	// Averages over the day's completion log. Nil when nothing was
	// completed that day.
	AvgCompletionFocus   *float64 `json:"avg_completion_focus,omitempty"`
	AvgCompletionMinutes *float64 `json:"avg_completion_minutes,omitempty"`
}

// HasProductivity reports whether a productivity score was computed for the
// day.
func (a *DailyAggregate) HasProductivity() bool {
	return a.ProductivityScore != nil
}

// HasMood reports whether any mood was logged on the day.
func (a *DailyAggregate) HasMood() bool {
	return a.MoodScore != nil
}

// WeeklyAggregate summarizes the 7 days starting at WeekStart. Averages skip
// days that carry no data for the metric.
type WeeklyAggregate struct {
	WeekStart time.Time         `json:"week_start"`
	Days      []*DailyAggregate `json:"days"`

	TasksPlanned   int `json:"tasks_planned"`
	TasksCompleted int `json:"tasks_completed"`

	AvgCompletionRate  *float64 `json:"avg_completion_rate,omitempty"`
	TotalFocusHours    float64  `json:"total_focus_hours"`
	AvgDailyFocusHours float64  `json:"avg_daily_focus_hours"`
	AvgProductivity    *float64 `json:"avg_productivity,omitempty"`
	AvgMood            *float64 `json:"avg_mood,omitempty"`
}

// MonthlyAggregate summarizes a calendar month.
type MonthlyAggregate struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`

	TasksCreated    int     `json:"tasks_created"`
	TasksCompleted  int     `json:"tasks_completed"`
	CompletionRate  float64 `json:"completion_rate"`
	TotalFocusHours float64 `json:"total_focus_hours"`

	AvgProductivity *float64 `json:"avg_productivity,omitempty"`
	AvgMood         *float64 `json:"avg_mood,omitempty"`
}

// Trend summarizes the trailing N days, inclusive of the reference day.
// Correlation is nil when fewer than 2 paired days exist or either series
// has zero variance. Callers must not read nil as "no correlation".
type Trend struct {
	Days  int               `json:"days"`
	Daily []*DailyAggregate `json:"daily"`

	AvgProductivity   *float64 `json:"avg_productivity,omitempty"`
	AvgMood           *float64 `json:"avg_mood,omitempty"`
	AvgCompletionRate *float64 `json:"avg_completion_rate,omitempty"`
	AvgFocusHours     *float64 `json:"avg_focus_hours,omitempty"`

	MoodProductivityCorrelation *float64 `json:"mood_productivity_correlation,omitempty"`
}

// CorrelationReport is the user-facing view over the mood-productivity
// relationship within a trend window.
type CorrelationReport struct {
	Days        int      `json:"days"`
	Coefficient *float64 `json:"coefficient,omitempty"`
	SampleSize  int      `json:"sample_size"`
	Strength    string   `json:"strength"`
	Direction   string   `json:"direction,omitempty"`

	// Average productivity split by mood band: high is mood >= 7, low is
	// mood < 5, medium is the rest. Nil when the window has no days in the
	// band.
	HighMoodProductivity   *float64 `json:"high_mood_productivity,omitempty"`
	MediumMoodProductivity *float64 `json:"medium_mood_productivity,omitempty"`
	LowMoodProductivity    *float64 `json:"low_mood_productivity,omitempty"`

	HighMoodDays int `json:"high_mood_days"`
	LowMoodDays  int `json:"low_mood_days"`

	// Insight compares the high and low bands in one sentence. Empty when
	// either band is empty.
	Insight string `json:"insight,omitempty"`
}

const (
	StrengthInsufficient = "insufficient_data"
	StrengthNegligible   = "negligible"
	StrengthWeak         = "weak"
	StrengthModerate     = "moderate"
	StrengthStrong       = "strong"
)

// DescribeCorrelation maps a coefficient onto a strength and direction
// label. A nil coefficient means the window could not support the statistic.
func DescribeCorrelation(r *float64) (strength, direction string) {
	if r == nil {
		return StrengthInsufficient, ""
	}
	abs := *r
	if abs < 0 {
		abs = -abs
		direction = "negative"
	} else {
		direction = "positive"
	}
	switch {
	case abs >= 0.7:
		strength = StrengthStrong
	case abs >= 0.4:
		strength = StrengthModerate
	case abs >= 0.2:
		strength = StrengthWeak
	default:
		strength = StrengthNegligible
	}
	return strength, direction
}
