package constants

// Redis key formats
const (
	// Bank directory
	KeyBankList     = "banks:list"         // JSON snapshot of the bank directory
	KeyBankListLock = "banks:list:refresh" // SETNX lock held while one instance refreshes

	// Rate Limiting
	KeyRateLimitPayments = "rate:payments"
)
