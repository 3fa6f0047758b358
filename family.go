package gmdh

import (
	"log"
	"runtime"
)

// FamilyKind tags which of the four GMDH variants a Model was fit with.
type FamilyKind uint8

const (
	COMBI FamilyKind = iota
	MULTI
	MIA
	RIA
)

func (f FamilyKind) String() string {
	switch f {
	case COMBI:
		return "COMBI"
	case MULTI:
		return "MULTI"
	case MIA:
		return "MIA"
	case RIA:
		return "RIA"
	default:
		return "unknown"
	}
}

// PolynomialType selects the 2-variable polynomial MIA/RIA expand a pair of
// columns into.
type PolynomialType uint8

const (
	Linear PolynomialType = iota
	LinearCov
	Quadratic
)

// fitConfig collects the hyperparameters shared by the four Fit entry
// points. Built from functional Options, following the With*(fc
// *fitConfig) pattern used throughout this package.
type fitConfig struct {
	criterion Criterion
	kBest     int
	testSize  float64
	pAverage  int
	threads   int
	verbose   int
	limit     float64
	polyType  PolynomialType
	shuffle   bool
	seed      int64
}

func defaultConfig() fitConfig {
	verbose := 0
	if Verbose {
		verbose = 1
	}
	return fitConfig{
		criterion: NewCriterion(Regularity, SolverBalanced),
		kBest:     3,
		testSize:  0.5,
		pAverage:  1,
		threads:   1,
		verbose:   verbose,
		limit:     0,
		polyType:  Quadratic,
		shuffle:   false,
		seed:      0,
	}
}

// Option configures a Fit call.
type Option func(*fitConfig)

// WithCriterion sets the external criterion used to score candidates.
func WithCriterion(c Criterion) Option { return func(fc *fitConfig) { fc.criterion = c } }

// WithKBest sets how many candidates survive each layer. MUST be >= 3 for
// MIA/RIA; COMBI ignores this option entirely since it always keeps every
// candidate through to the final prune.
func WithKBest(k int) Option { return func(fc *fitConfig) { fc.kBest = k } }

// WithTestSize sets the held-out fraction for the external criterion.
// Falls back to 0.5 with a warning if outside (0,1).
func WithTestSize(v float64) Option { return func(fc *fitConfig) { fc.testSize = v } }

// WithPAverage sets how many top candidates are averaged for the stopping
// rule. Falls back to 1 with a warning if < 1.
func WithPAverage(p int) Option { return func(fc *fitConfig) { fc.pAverage = p } }

// WithThreads sets the worker-pool size. -1 means hardware concurrency.
// Falls back to 1 with a warning for any other invalid value.
func WithThreads(n int) Option { return func(fc *fitConfig) { fc.threads = n } }

// WithVerbose sets the progress-reporting level (0 or 1).
func WithVerbose(v int) Option { return func(fc *fitConfig) { fc.verbose = v } }

// WithLimit sets the minimum required layer-over-layer improvement.
// Falls back to 0 with a warning if negative.
func WithLimit(l float64) Option { return func(fc *fitConfig) { fc.limit = l } }

// WithPolynomialType sets the 2-variable polynomial used by MIA/RIA.
func WithPolynomialType(p PolynomialType) Option { return func(fc *fitConfig) { fc.polyType = p } }

// WithShuffle enables a seeded shuffle of rows before the train/test split.
func WithShuffle(shuffle bool, seed int64) Option {
	return func(fc *fitConfig) { fc.shuffle = shuffle; fc.seed = seed }
}

// validate applies a warning-with-fallback policy for the soft
// hyperparameters, and resolves threads to an actual worker count.
func (fc *fitConfig) validate() int {
	if fc.testSize <= 0 || fc.testSize >= 1 {
		log.Printf("gmdh: test_size %v out of (0,1), using default 0.5", fc.testSize)
		fc.testSize = 0.5
	}
	if fc.pAverage < 1 {
		log.Printf("gmdh: p_average %v < 1, using default 1", fc.pAverage)
		fc.pAverage = 1
	}
	if fc.limit < 0 {
		log.Printf("gmdh: limit %v < 0, using default 0", fc.limit)
		fc.limit = 0
	}
	if fc.verbose != 0 && fc.verbose != 1 {
		log.Printf("gmdh: verbose %v not in {0,1}, using default 0", fc.verbose)
		fc.verbose = 0
	}

	threads := fc.threads
	switch {
	case threads == -1:
		threads = runtime.NumCPU()
	case threads <= 0:
		log.Printf("gmdh: threads %v invalid, using default 1", threads)
		threads = 1
	default:
		if threads > runtime.NumCPU() {
			threads = runtime.NumCPU()
		}
	}
	return threads
}

// requireKBestAtLeast3 is the hard (raising) validation MIA/RIA need.
func requireKBestAtLeast3(kBest int) error {
	if kBest < 3 {
		return wrap(ErrInvalidArgument, "k_best must be >= 3 for MIA/RIA")
	}
	return nil
}

func requireColsAtLeast3(cols int) error {
	if cols < 3 {
		return wrap(ErrInvalidArgument, "X must have >= 3 columns for MIA/RIA")
	}
	return nil
}
