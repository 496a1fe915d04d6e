package domain

type Table string

const (
	TableActivities   Table = "activities"
	TableOrders       Table = "orders"
	TableCancels      Table = "cancels"
	TableTransactions Table = "transactions"
	TableAsks         Table = "asks"
	TableBids         Table = "bids"
	TableSwaps        Table = "swaps"
)
