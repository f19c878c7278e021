// Package sample produces synthetic wellness history for demo accounts.
package sample

import (
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"wellness/internal/domain"
)

// DefaultDays is the history length generated per user.
const DefaultDays = 30

// Generator draws each field from a clipped normal distribution.
type Generator struct {
	Days int
	rng  *rand.Rand
}

// New returns a Generator seeded from seed. Equal seeds yield equal output.
func New(seed uint64) *Generator {
	return &Generator{Days: DefaultDays, rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// ForUser returns g.Days entries for userID ending on today, oldest first.
func (g *Generator) ForUser(userID string, today time.Time) []domain.Entry {
	days := g.Days
	if days <= 0 {
		days = DefaultDays
	}
	out := make([]domain.Entry, 0, days)
	for i := 0; i < days; i++ {
		d := today.AddDate(0, 0, -(days - 1 - i))
		out = append(out, domain.Entry{
			Date:        domain.Today(d),
			UserID:      userID,
			SleepHours:  domain.FormatNumber(g.normal(7.2, 1.0, 4.5, 9.5), 2),
			Mood:        strconv.Itoa(int(math.Round(g.normal(6.8, 1.5, 1, 10)))),
			Stress:      strconv.Itoa(int(math.Round(g.normal(4.0, 1.8, 1, 10)))),
			ActivityMin: strconv.Itoa(int(math.Round(g.normal(35, 20, 0, 120)))),
		})
	}
	return out
}

// ForUsers concatenates ForUser for every username in order.
func (g *Generator) ForUsers(usernames []string, today time.Time) []domain.Entry {
	var out []domain.Entry
	for _, u := range usernames {
		out = append(out, g.ForUser(u, today)...)
	}
	return out
}

func (g *Generator) normal(mean, stddev, lo, hi float64) float64 {
	v := mean + stddev*g.rng.NormFloat64()
	return math.Max(lo, math.Min(hi, v))
}
