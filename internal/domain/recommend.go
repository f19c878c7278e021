package domain

// Severity tags a Tip for presentation.
type Severity string

// Tip severities.
const (
	SeverityHealthy  Severity = "healthy"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

// Tip is a single recommendation derived from one field of an Entry. Field is
// empty for the all-clear fallback.
type Tip struct {
	Field    Field    `json:"field,omitempty"`
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}

// FallbackTip is returned when no field produced a tip.
var FallbackTip = Tip{Severity: SeverityHealthy, Text: "All metrics look within healthy ranges - keep it up!"}

type rule struct {
	field    Field
	classify func(v float64) Severity
	text     map[Severity]string
}

var rules = []rule{
	{
		field: FieldSleepHours,
		classify: func(v float64) Severity {
			switch {
			case v >= 7 && v <= 9:
				return SeverityHealthy
			case v >= 6 && v < 7:
				return SeverityModerate
			}
			return SeverityHigh
		},
		text: map[Severity]string{
			SeverityHealthy:  "Sleep: Healthy - 7-9 hours.",
			SeverityModerate: "Sleep: Moderate - slightly below recommended.",
			SeverityHigh:     "Sleep: High risk - adjust your sleep schedule to 7-9 hours.",
		},
	},
	{
		field: FieldActivityMin,
		classify: func(v float64) Severity {
			switch {
			case v >= 30:
				return SeverityHealthy
			case v >= 15 && v < 30:
				return SeverityModerate
			}
			return SeverityHigh
		},
		text: map[Severity]string{
			SeverityHealthy:  "Activity: Healthy - meets recommended activity.",
			SeverityModerate: "Activity: Moderate - add short walks.",
			SeverityHigh:     "Activity: High risk - aim for 30+ minutes daily.",
		},
	},
	{
		field: FieldMood,
		classify: func(v float64) Severity {
			switch {
			case v >= 7 && v <= 10:
				return SeverityHealthy
			case v >= 4 && v <= 6:
				return SeverityModerate
			}
			return SeverityHigh
		},
		text: map[Severity]string{
			SeverityHealthy:  "Mood: Healthy - keep doing what works.",
			SeverityModerate: "Mood: Moderate - schedule enjoyable activities.",
			SeverityHigh:     "Mood: High risk - consider reaching out for support.",
		},
	},
	{
		field: FieldStress,
		classify: func(v float64) Severity {
			switch {
			case v >= 1 && v <= 3:
				return SeverityHealthy
			case v >= 4 && v <= 6:
				return SeverityModerate
			}
			return SeverityHigh
		},
		text: map[Severity]string{
			SeverityHealthy:  "Stress: Healthy - continue current coping strategies.",
			SeverityModerate: "Stress: Moderate - relaxation may help.",
			SeverityHigh:     "Stress: High - try short breathing exercises.",
		},
	},
}

// Recommend maps an entry to threshold-based tips in the order sleep,
// activity, mood, stress. Fields that do not parse are skipped.
func Recommend(e Entry) []Tip {
	var tips []Tip
	for _, r := range rules {
		v, ok := e.Value(r.field)
		if !ok {
			continue
		}
		sev := r.classify(v)
		tips = append(tips, Tip{Field: r.field, Severity: sev, Text: r.text[sev]})
	}
	if len(tips) == 0 {
		return []Tip{FallbackTip}
	}
	return tips
}
