package seed

import (
	"sort"
	"time"
)

// TransactionDates draws n datetimes uniformly from [start, end] and returns
// them sorted ascending, so the balance engine sees each account's
// transactions in true chronological order. Pure function of its inputs and
// the faker state.
func (f *Factory) TransactionDates(n int, start, end time.Time) []time.Time {
	dates := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, f.fake.DateRange(start, end))
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
