package routing

const (
	DEFAULT_ALL_PAIRS_WORKERS = 4
)
