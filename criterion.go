package gmdh

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CriterionKind selects one of the nine primitive external-quality measures
// a candidate can be scored with.
type CriterionKind uint8

const (
	Regularity CriterionKind = iota
	SymRegularity
	Stability
	SymStability
	UnbiasedOutputs
	SymUnbiasedOutputs
	UnbiasedCoeffs
	AbsoluteStability
	SymAbsoluteStability
)

// Criterion evaluates a candidate's external quality and yields the
// coefficients fitted on the training split. A Criterion is either a
// primitive (one of the nine kinds above) or a composition (Parallel or
// Sequential) of two primitives built with NewParallelCriterion /
// NewSequentialCriterion.
type Criterion struct {
	kind   CriterionKind
	solver Solver

	second     *Criterion
	alpha      float64
	sequential bool
}

// NewCriterion builds a primitive criterion of the given kind using solver
// for the internal least-squares fits.
func NewCriterion(kind CriterionKind, solver Solver) Criterion {
	return Criterion{kind: kind, solver: solver}
}

// NewParallelCriterion blends two criteria: score = alpha*first + (1-alpha)*second.
func NewParallelCriterion(first, second Criterion, alpha float64) (Criterion, error) {
	if alpha < 0 || alpha > 1 {
		return Criterion{}, wrap(ErrInvalidArgument, "NewParallelCriterion: alpha must be in [0,1]")
	}
	c := first
	c.second = &second
	c.alpha = alpha
	c.sequential = false
	return c, nil
}

// NewSequentialCriterion evaluates all candidates with first, then
// re-scores only the retained top-k with second using first's fitted
// coefficients as a hint (no refit).
func NewSequentialCriterion(first, second Criterion) (Criterion, error) {
	if first.kind == second.kind && first.second == nil && second.second == nil {
		return Criterion{}, wrap(ErrInvalidArgument, "NewSequentialCriterion: first and second must differ")
	}
	c := first
	c.second = &second
	c.sequential = true
	return c, nil
}

// IsSequential reports whether this is a Sequential composition, which the
// driver must re-score the surviving top-k candidates for after the first
// scoring pass.
func (c Criterion) IsSequential() bool { return c.sequential && c.second != nil }

// tempValues memoizes the partial products shared across the composed
// criteria so that, within one candidate's evaluation, each coefficient
// fit and each prediction vector is computed at most once.
type tempValues struct {
	coeffsTrain, coeffsTest, coeffsAll []float64

	yPredTrainByTrain, yPredTrainByTest []float64
	yPredTestByTrain, yPredTestByTest   []float64
}

func (t *tempValues) getCoeffsTrain(xTrain *mat.Dense, yTrain []float64, s Solver) []float64 {
	if t.coeffsTrain == nil {
		t.coeffsTrain = findBestCoeffs(xTrain, yTrain, s)
	}
	return t.coeffsTrain
}

func (t *tempValues) getCoeffsTest(xTest *mat.Dense, yTest []float64, s Solver) []float64 {
	if t.coeffsTest == nil {
		t.coeffsTest = findBestCoeffs(xTest, yTest, s)
	}
	return t.coeffsTest
}

func (t *tempValues) getCoeffsAll(xTrain, xTest *mat.Dense, yTrain, yTest []float64, s Solver) []float64 {
	if t.coeffsAll == nil {
		xAll := stackRows(xTrain, xTest)
		yAll := concatVec(yTrain, yTest)
		t.coeffsAll = findBestCoeffs(xAll, yAll, s)
	}
	return t.coeffsAll
}

func (t *tempValues) getYPredTrainByTrain(xTrain *mat.Dense, yTrain []float64, s Solver) []float64 {
	if t.yPredTrainByTrain == nil {
		t.yPredTrainByTrain = matVec(xTrain, t.getCoeffsTrain(xTrain, yTrain, s))
	}
	return t.yPredTrainByTrain
}

func (t *tempValues) getYPredTestByTrain(xTrain, xTest *mat.Dense, yTrain []float64, s Solver) []float64 {
	if t.yPredTestByTrain == nil {
		t.yPredTestByTrain = matVec(xTest, t.getCoeffsTrain(xTrain, yTrain, s))
	}
	return t.yPredTestByTrain
}

func (t *tempValues) getYPredTrainByTest(xTrain, xTest *mat.Dense, yTest []float64, s Solver) []float64 {
	if t.yPredTrainByTest == nil {
		t.yPredTrainByTest = matVec(xTrain, t.getCoeffsTest(xTest, yTest, s))
	}
	return t.yPredTrainByTest
}

func (t *tempValues) getYPredTestByTest(xTest *mat.Dense, yTest []float64, s Solver) []float64 {
	if t.yPredTestByTest == nil {
		t.yPredTestByTest = matVec(xTest, t.getCoeffsTest(xTest, yTest, s))
	}
	return t.yPredTestByTest
}

func sse(u, v []float64) float64 {
	sum := 0.0
	for i := range u {
		d := u[i] - v[i]
		sum += d * d
	}
	return sum
}

func sumProd(u, v []float64) float64 {
	sum := 0.0
	for i := range u {
		sum += u[i] * v[i]
	}
	return sum
}

func sub(u, v []float64) []float64 {
	out := make([]float64, len(u))
	for i := range u {
		out[i] = u[i] - v[i]
	}
	return out
}

// calculateKind dispatches to one of the nine primitives, sharing tv across
// the call so a compound criterion never recomputes a fit or prediction.
func calculateKind(kind CriterionKind, xTrain, xTest *mat.Dense, yTrain, yTest []float64, s Solver, tv *tempValues) (float64, []float64) {
	switch kind {
	case Regularity:
		coeffs := tv.getCoeffsTrain(xTrain, yTrain, s)
		pred := tv.getYPredTestByTrain(xTrain, xTest, yTrain, s)
		if isDegenerate(coeffs) {
			return posInf, coeffs
		}
		return sse(yTest, pred), coeffs
	case SymRegularity:
		coeffsTrain := tv.getCoeffsTrain(xTrain, yTrain, s)
		predTestByTrain := tv.getYPredTestByTrain(xTrain, xTest, yTrain, s)
		coeffsTest := tv.getCoeffsTest(xTest, yTest, s)
		predTrainByTest := tv.getYPredTrainByTest(xTrain, xTest, yTest, s)
		if isDegenerate(coeffsTrain) || isDegenerate(coeffsTest) {
			return posInf, coeffsTrain
		}
		return sse(yTest, predTestByTrain) + sse(yTrain, predTrainByTest), coeffsTrain
	case Stability:
		coeffs := tv.getCoeffsTrain(xTrain, yTrain, s)
		if isDegenerate(coeffs) {
			return posInf, coeffs
		}
		predTrain := tv.getYPredTrainByTrain(xTrain, yTrain, s)
		predTest := tv.getYPredTestByTrain(xTrain, xTest, yTrain, s)
		return sse(yTrain, predTrain) + sse(yTest, predTest), coeffs
	case SymStability:
		coeffsTrain := tv.getCoeffsTrain(xTrain, yTrain, s)
		coeffsTest := tv.getCoeffsTest(xTest, yTest, s)
		if isDegenerate(coeffsTrain) || isDegenerate(coeffsTest) {
			return posInf, coeffsTrain
		}
		s1 := sse(yTrain, tv.getYPredTrainByTrain(xTrain, yTrain, s)) + sse(yTest, tv.getYPredTestByTrain(xTrain, xTest, yTrain, s))
		s2 := sse(yTrain, tv.getYPredTrainByTest(xTrain, xTest, yTest, s)) + sse(yTest, tv.getYPredTestByTest(xTest, yTest, s))
		return s1 + s2, coeffsTrain
	case UnbiasedOutputs:
		coeffsTrain := tv.getCoeffsTrain(xTrain, yTrain, s)
		coeffsTest := tv.getCoeffsTest(xTest, yTest, s)
		if isDegenerate(coeffsTrain) || isDegenerate(coeffsTest) {
			return posInf, coeffsTrain
		}
		predByTrain := tv.getYPredTestByTrain(xTrain, xTest, yTrain, s)
		predByTest := tv.getYPredTestByTest(xTest, yTest, s)
		return sse(predByTrain, predByTest), coeffsTrain
	case SymUnbiasedOutputs:
		coeffsTrain := tv.getCoeffsTrain(xTrain, yTrain, s)
		coeffsTest := tv.getCoeffsTest(xTest, yTest, s)
		if isDegenerate(coeffsTrain) || isDegenerate(coeffsTest) {
			return posInf, coeffsTrain
		}
		a := sse(tv.getYPredTrainByTrain(xTrain, yTrain, s), tv.getYPredTrainByTest(xTrain, xTest, yTest, s))
		b := sse(tv.getYPredTestByTrain(xTrain, xTest, yTrain, s), tv.getYPredTestByTest(xTest, yTest, s))
		return a + b, coeffsTrain
	case UnbiasedCoeffs:
		coeffsTrain := tv.getCoeffsTrain(xTrain, yTrain, s)
		coeffsTest := tv.getCoeffsTest(xTest, yTest, s)
		if isDegenerate(coeffsTrain) || isDegenerate(coeffsTest) || len(coeffsTrain) != len(coeffsTest) {
			return posInf, coeffsTrain
		}
		d := sub(coeffsTrain, coeffsTest)
		return sumProd(d, d), coeffsTrain
	case AbsoluteStability:
		coeffsTrain := tv.getCoeffsTrain(xTrain, yTrain, s)
		coeffsTest := tv.getCoeffsTest(xTest, yTest, s)
		coeffsAll := tv.getCoeffsAll(xTrain, xTest, yTrain, yTest, s)
		if isDegenerate(coeffsTrain) || isDegenerate(coeffsTest) || isDegenerate(coeffsAll) {
			return posInf, coeffsTrain
		}
		predByTrain := tv.getYPredTestByTrain(xTrain, xTest, yTrain, s)
		predByTest := tv.getYPredTestByTest(xTest, yTest, s)
		predByAll := matVec(xTest, coeffsAll)
		return sumProd(sub(predByAll, predByTrain), sub(predByTest, predByAll)), coeffsTrain
	default: // SymAbsoluteStability
		coeffsTrain := tv.getCoeffsTrain(xTrain, yTrain, s)
		coeffsTest := tv.getCoeffsTest(xTest, yTest, s)
		coeffsAll := tv.getCoeffsAll(xTrain, xTest, yTrain, yTest, s)
		if isDegenerate(coeffsTrain) || isDegenerate(coeffsTest) || isDegenerate(coeffsAll) {
			return posInf, coeffsTrain
		}
		xAll := stackRows(xTrain, xTest)
		predAllByTrain := matVec(xAll, coeffsTrain)
		predAllByTest := matVec(xAll, coeffsTest)
		predAllByAll := matVec(xAll, coeffsAll)
		return sumProd(sub(predAllByAll, predAllByTrain), sub(predAllByTest, predAllByAll)), coeffsTrain
	}
}

var posInf = math.Inf(1)

// Calculate evaluates the criterion (primitive, Parallel, or Sequential) on
// one candidate's split data and returns (score, coeffsTrain).
func (c Criterion) Calculate(xTrain, xTest *mat.Dense, yTrain, yTest []float64) (float64, []float64) {
	tv := &tempValues{}
	score, coeffs := calculateKind(c.kind, xTrain, xTest, yTrain, yTest, c.solver, tv)
	if c.second == nil {
		return score, coeffs
	}
	if c.sequential {
		// Sequential's primary pass only evaluates with the first
		// criterion; Recalculate does the second pass on top-k.
		return score, coeffs
	}
	secondScore, _ := calculateKind(c.second.kind, xTrain, xTest, yTrain, yTest, c.second.solver, tv)
	return c.alpha*score + (1-c.alpha)*secondScore, coeffs
}

// Recalculate re-scores a previously evaluated candidate with the second
// criterion of a Sequential composition, reusing coeffsTrainHint instead of
// refitting.
func (c Criterion) Recalculate(xTrain, xTest *mat.Dense, yTrain, yTest []float64, coeffsTrainHint []float64) float64 {
	if c.second == nil {
		return posInf
	}
	tv := &tempValues{coeffsTrain: coeffsTrainHint}
	score, _ := calculateKind(c.second.kind, xTrain, xTest, yTrain, yTest, c.second.solver, tv)
	return score
}
