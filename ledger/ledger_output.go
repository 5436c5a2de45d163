package ledger

// LedgerOutput is an Output plus the milestone it was created ("booked") in
// and its output_id (spec §3).
type LedgerOutput struct {
	OutputID OutputID
	Output   *Output
	Booked   MilestoneStamp
}

// LedgerSpent is a LedgerOutput plus the milestone that consumed it. Its
// Output must be identical to the LedgerOutput previously created with the
// same OutputID (spec §3 invariant).
type LedgerSpent struct {
	LedgerOutput
	SpentAt MilestoneStamp
}
