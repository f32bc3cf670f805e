package reconcile

import "fmt"

// Strategy selects which state is treated as ground truth for the plugins
// that are currently active.
type Strategy string

const (
	// StrategyFull drops every plugin-owned entry found in the manifests and
	// re-adds the desired set.
	StrategyFull Strategy = "full"
	// StrategyIncremental diffs the desired configuration against the last
	// applied snapshot and touches only the difference.
	StrategyIncremental Strategy = "incremental"
)

// ParseStrategy parses a strategy string, defaulting to "full".
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyFull, "":
		return StrategyFull, nil
	case StrategyIncremental, "incr":
		return StrategyIncremental, nil
	default:
		return "", fmt.Errorf("unknown strategy: %q (must be full or incremental)", s)
	}
}
