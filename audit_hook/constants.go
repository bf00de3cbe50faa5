package audithook

// Action constants for audit events.
const (
	// Balance movement actions
	ActionTransferCompleted = "transfer.completed"
	ActionTransferDelegated = "transfer.delegated"

	// Allowance actions
	ActionApprovalSet = "approval.set"

	// Supply actions
	ActionSupplyMinted = "supply.minted"
	ActionSupplyBurned = "supply.burned"

	// Journal actions
	ActionJournalFlushed = "journal.flushed"
)

// Resource constants for audit events.
const (
	ResourceAccount   = "account"
	ResourceAllowance = "allowance"
	ResourceSupply    = "supply"
	ResourceJournal   = "journal"
)

// Category constants for audit events.
const (
	CategoryMovement   = "movement"
	CategoryDelegation = "delegation"
	CategorySupply     = "supply"
	CategoryPersist    = "persistence"
)

// Severity levels for audit events.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityError    = "error"
	SeverityCritical = "critical"
)

// Outcome values for audit events.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomePartial = "partial"
)
