package finance

import "time"

// Kind separa ingresos de egresos; aplica a categorías y transacciones.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

type Category struct {
	ID     string
	UserID string

	Name string
	Kind Kind

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Transaction struct {
	ID     string
	UserID string

	Date        time.Time // fecha calendario, medianoche UTC
	Kind        Kind
	Amount      float64 // siempre > 0; el signo lo da Kind
	Description string
	Notes       string

	CategoryID *string
	PropertyID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary es el balance sobre un conjunto filtrado de transacciones.
type Summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
	Count   int     `json:"count"`
}

// Summarize suma ingresos y egresos; Balance = Income - Expense.
func Summarize(txs []Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		switch tx.Kind {
		case KindIncome:
			s.Income += tx.Amount
		case KindExpense:
			s.Expense += tx.Amount
		}
	}
	s.Balance = s.Income - s.Expense
	s.Count = len(txs)
	return s
}
