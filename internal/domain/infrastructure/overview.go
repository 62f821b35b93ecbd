package infrastructure

// StatusTotals agrupa cantidad y presupuesto de un estado.
type StatusTotals struct {
	Count  int     `json:"count"`
	Budget float64 `json:"budget"`
}

type Overview struct {
	Planned     StatusTotals `json:"planned"`
	InProgress  StatusTotals `json:"in_progress"`
	Completed   StatusTotals `json:"completed"`
	Total       int          `json:"total"`
	TotalBudget float64      `json:"total_budget"`
}

func Summarize(projects []Project) Overview {
	var o Overview
	for _, p := range projects {
		var bucket *StatusTotals
		switch p.Status {
		case StatusPlanned:
			bucket = &o.Planned
		case StatusInProgress:
			bucket = &o.InProgress
		case StatusCompleted:
			bucket = &o.Completed
		}
		if bucket != nil {
			bucket.Count++
			bucket.Budget += p.Budget
		}
		o.Total++
		o.TotalBudget += p.Budget
	}
	return o
}
