package gasat

// Method names a construction mode for the initial population.
// RandomMethod is the only mode defined; CreatePopulation always builds
// random assignments and does not read Config.Method.
type Method string

// RandomMethod draws every variable of every initial individual
// independently at random.
const RandomMethod Method = "random"

// Config enumerates the GASAT core's tunable parameters (spec §6).
type Config struct {
	// PopulationSize is the population cardinality.
	PopulationSize int
	// SubPopulationSize is the elite slice size used for parent
	// selection and weakest-replacement.
	SubPopulationSize int
	// MaxGenerations caps the driver's generation loop.
	MaxGenerations int
	// MaxFlip caps a single tabu descent's iteration count.
	MaxFlip int
	// TabuListLength is the FIFO capacity of the tabu memory.
	TabuListLength int
	// CrossoverOperator selects CC, CCTM, or FF.
	CrossoverOperator CrossoverOperator
	// IsRVCF selects the RVCF choice function over the Standard one.
	IsRVCF bool
	// IsDiversification enables the diversification branch of the tabu
	// search.
	IsDiversification bool
	// MaxFalse is the clause false-count threshold that triggers
	// diversification. Only consulted when IsDiversification is set.
	MaxFalse int
	// Rec is the cascade depth of diversification's forced flips. Only
	// consulted when IsDiversification is set.
	Rec int
	// K is the forbidden-flip aging threshold. Only consulted when
	// IsDiversification is set.
	K int
	// Method records the construction mode of the initial population. It
	// is not read: CreatePopulation always draws random assignments.
	Method Method
	// Seed seeds the engine's random source. All random choices (initial
	// population bits, parent draws, tie-break draws) derive from it, so
	// the same Seed reproduces the same run.
	Seed int64
}

// DefaultConfig returns a Config with the parameter values used
// throughout the original GASAT literature and the source this spec was
// distilled from: population 100, sub-population 15, 1000 generations,
// 10000 flips per descent, CC crossover, Standard choice, no
// diversification.
func DefaultConfig() Config {
	return Config{
		PopulationSize:    100,
		SubPopulationSize: 15,
		MaxGenerations:    1000,
		MaxFlip:           10000,
		TabuListLength:    10,
		CrossoverOperator: CorrectiveClause,
		Method:            RandomMethod,
	}
}

// Validate checks the invariants a run depends on, returning a
// BadConfigurationError describing the first violation found.
func (c Config) Validate() error {
	switch {
	case c.PopulationSize <= 0:
		return badConfigurationf("population_size must be positive, got %d", c.PopulationSize)
	case c.SubPopulationSize <= 0:
		return badConfigurationf("sub_population_size must be positive, got %d", c.SubPopulationSize)
	case c.SubPopulationSize < 2:
		return badConfigurationf("sub_population_size must be at least 2 to draw distinct parents, got %d", c.SubPopulationSize)
	case c.SubPopulationSize > c.PopulationSize:
		return badConfigurationf("sub_population_size (%d) exceeds population_size (%d)", c.SubPopulationSize, c.PopulationSize)
	case c.MaxGenerations <= 0:
		return badConfigurationf("max_generations must be positive, got %d", c.MaxGenerations)
	case c.MaxFlip <= 0:
		return badConfigurationf("max_flip must be positive, got %d", c.MaxFlip)
	case c.TabuListLength <= 0:
		return badConfigurationf("tabu_list_length must be positive, got %d", c.TabuListLength)
	case !c.CrossoverOperator.valid():
		return badConfigurationf("crossover_operator must be 0 (CC), 1 (CCTM), or 2 (FF), got %d", c.CrossoverOperator)
	}
	if c.IsDiversification {
		if c.MaxFalse <= 0 {
			return badConfigurationf("max_false must be positive when diversification is enabled, got %d", c.MaxFalse)
		}
		if c.K <= 0 {
			return badConfigurationf("k must be positive when diversification is enabled, got %d", c.K)
		}
		if c.Rec < 0 {
			return badConfigurationf("rec must be non-negative when diversification is enabled, got %d", c.Rec)
		}
	}
	return nil
}
