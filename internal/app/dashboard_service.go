package app

import (
	"context"

	"wellness/internal/analytics"
	"wellness/internal/domain"
)

// TrendWindow is the rolling-mean window used by the dashboard.
const TrendWindow = 7

// DashboardService derives statistics, tips and trends from a user's entries.
type DashboardService struct {
	entries *EntryService
}

// NewDashboardService creates a DashboardService reading through entries.
func NewDashboardService(entries *EntryService) *DashboardService {
	return &DashboardService{entries: entries}
}

// Dashboard is everything the presentation layer shows for one user.
type Dashboard struct {
	Username        string                                    `json:"username"`
	Today           string                                    `json:"today"`
	LoggedToday     bool                                      `json:"loggedToday"`
	Entries         []domain.Entry                            `json:"entries"`
	Stats           []analytics.FieldStats                    `json:"stats"`
	Recommendations []domain.Tip                              `json:"recommendations"`
	Correlations    *analytics.Matrix                         `json:"correlations"`
	Rolling         map[domain.Field][]analytics.RollingPoint `json:"rolling"`
	Weekly          []analytics.WeekSummary                   `json:"weekly"`
}

// Stats returns rounded per-field mean, min and max for username.
func (s *DashboardService) Stats(ctx context.Context, username string) ([]analytics.FieldStats, error) {
	list, err := s.entries.ListForUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return roundStats(analytics.Summarize(list)), nil
}

// Recommendations returns tips for username's latest entry, or nil when the
// user has no entries yet.
func (s *DashboardService) Recommendations(ctx context.Context, username string) ([]domain.Tip, *domain.Entry, error) {
	list, err := s.entries.ListForUser(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if len(list) == 0 {
		return nil, nil, nil
	}
	latest := list[0]
	return domain.Recommend(latest), &latest, nil
}

// Correlations returns the correlation matrix for username.
func (s *DashboardService) Correlations(ctx context.Context, username string) (analytics.Matrix, error) {
	list, err := s.entries.ListForUser(ctx, username)
	if err != nil {
		return analytics.Matrix{}, err
	}
	return analytics.Correlations(list), nil
}

// Rolling returns the rolling mean of field for username.
func (s *DashboardService) Rolling(ctx context.Context, username string, field domain.Field, window int) ([]analytics.RollingPoint, error) {
	list, err := s.entries.ListForUser(ctx, username)
	if err != nil {
		return nil, err
	}
	points, err := analytics.RollingMean(list, field, window)
	if err != nil {
		return nil, &ValidationError{Err: err}
	}
	return points, nil
}

// Weekly returns per-week means for username.
func (s *DashboardService) Weekly(ctx context.Context, username string) ([]analytics.WeekSummary, error) {
	list, err := s.entries.ListForUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return analytics.WeeklySummary(list), nil
}

// Build assembles the full dashboard from a single read of the entry store.
// Rolling trends are only included once the user has TrendWindow entries.
func (s *DashboardService) Build(ctx context.Context, username string) (*Dashboard, error) {
	list, err := s.entries.ListForUser(ctx, username)
	if err != nil {
		return nil, err
	}
	today := s.entries.Today()
	d := &Dashboard{
		Username: username,
		Today:    today,
		Entries:  list,
		Stats:    roundStats(analytics.Summarize(list)),
		Weekly:   analytics.WeeklySummary(list),
	}
	if len(list) == 0 {
		return d, nil
	}
	d.LoggedToday = list[0].Date == today
	d.Recommendations = domain.Recommend(list[0])
	if m := analytics.Correlations(list); !m.Empty() {
		d.Correlations = &m
	}
	if len(list) >= TrendWindow {
		d.Rolling = make(map[domain.Field][]analytics.RollingPoint, len(domain.MeasuredFields))
		for _, f := range domain.MeasuredFields {
			points, err := analytics.RollingMean(list, f, TrendWindow)
			if err != nil {
				return nil, err
			}
			d.Rolling[f] = points
		}
	}
	return d, nil
}

func roundStats(stats []analytics.FieldStats) []analytics.FieldStats {
	for i := range stats {
		for _, p := range []*float64{stats[i].Mean, stats[i].Min, stats[i].Max} {
			if p != nil {
				*p = domain.Round2(*p)
			}
		}
	}
	return stats
}
