package domain

// Period is a dashboard lookback horizon, expressed as whole months back
// from the latest snapshot.
type Period string

const (
	Period_1M Period = "1m"
	Period_3M Period = "3m"
	Period_6M Period = "6m"
	Period_1Y Period = "1y"
)

var AllPeriods = []Period{Period_1M, Period_3M, Period_6M, Period_1Y}

func (p Period) Months() int {
	switch p {
	case Period_1M:
		return 1
	case Period_3M:
		return 3
	case Period_6M:
		return 6
	case Period_1Y:
		return 12
	}
	return 0
}
