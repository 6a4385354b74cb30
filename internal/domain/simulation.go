package domain

// SimulationStyle selects the execution-cost model for a run.
type SimulationStyle string

// Simulation style constants.
const (
	// StyleFixedSlippage fills orders on the next event at its price moved
	// against the order by a constant spread. Selected by the run composer.
	StyleFixedSlippage SimulationStyle = "FIXED_SLIPPAGE"

	// StyleNoFriction fills orders on the next event at its exact price.
	StyleNoFriction SimulationStyle = "NO_FRICTION"
)
