package usecase

// Topics the ledger publishes to. Brokers may prefix them per deployment.
const (
	TopicTransactions  = "transactions"
	TopicInterestRules = "interest-rules"
	TopicStatements    = "statements"
)
