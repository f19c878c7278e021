package analytics

import (
	"errors"

	"wellness/internal/domain"
)

// ErrInvalidWindow is returned for a rolling window smaller than one.
var ErrInvalidWindow = errors.New("window must be >= 1")

// RollingPoint is one position of a rolling-mean series. Mean is nil until a
// full window of valid values is available.
type RollingPoint struct {
	Date string   `json:"date"`
	Mean *float64 `json:"mean"`
}

// RollingMean returns the trailing simple moving average of field over window
// entries, ordered by date ascending. A position whose window contains a
// missing value is undefined.
func RollingMean(entries []domain.Entry, field domain.Field, window int) ([]RollingPoint, error) {
	if window < 1 {
		return nil, ErrInvalidWindow
	}
	if !field.Valid() {
		return nil, errors.New("unknown field " + string(field))
	}

	sorted := SortAscending(entries)
	values := make([]float64, len(sorted))
	valid := make([]bool, len(sorted))
	for i, e := range sorted {
		values[i], valid[i] = e.Value(field)
	}

	points := make([]RollingPoint, len(sorted))
	var sum float64
	missing := 0
	for i, e := range sorted {
		points[i].Date = e.Date
		if valid[i] {
			sum += values[i]
		} else {
			missing++
		}
		if j := i - window; j >= 0 {
			if valid[j] {
				sum -= values[j]
			} else {
				missing--
			}
		}
		if i+1 >= window && missing == 0 {
			mean := sum / float64(window)
			points[i].Mean = &mean
		}
	}
	return points, nil
}
