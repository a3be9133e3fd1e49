package reports

// BalanceSheetViewModel holds rendering data for the balance sheet report.
type BalanceSheetViewModel struct {
	AgencyName     string
	SourceCurrency string
	TargetCurrency string
	Report         BalanceSheet
}

// BankBookViewModel holds rendering data for the merged bank ledger.
type BankBookViewModel struct {
	AgencyName     string
	TargetCurrency string
	Report         BankBook
}

// ProfitViewModel holds rendering data for the profit report.
type ProfitViewModel struct {
	AgencyName     string
	PeriodLabel    string
	TargetCurrency string
	Report         ProfitReport
}
