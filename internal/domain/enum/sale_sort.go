package enum

// SaleSortMode selects how the sales history is ordered for presentation.
// ReceiptMonth modes compare only the month component of the receipt
// collection date; sales without a receipt date sort as month 0.
type SaleSortMode string

const (
	SortDateDesc         SaleSortMode = "date_desc"
	SortDateAsc          SaleSortMode = "date_asc"
	SortAmountDesc       SaleSortMode = "amount_desc"
	SortAmountAsc        SaleSortMode = "amount_asc"
	SortReceiptMonthDesc SaleSortMode = "receipt_month_desc"
	SortReceiptMonthAsc  SaleSortMode = "receipt_month_asc"
)

// Valid reports whether m is a recognised sort mode.
func (m SaleSortMode) Valid() bool {
	switch m {
	case SortDateDesc, SortDateAsc,
		SortAmountDesc, SortAmountAsc,
		SortReceiptMonthDesc, SortReceiptMonthAsc:
		return true
	}
	return false
}

func (m SaleSortMode) String() string {
	return string(m)
}
