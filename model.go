package gmdh

// Model is the fitted, pruned output of a GMDH search: enough to predict
// on new rows and to round-trip through Save/Load. Layers is ordered
// first-fit-first; for COMBI and MULTI it always has exactly one entry
// after pruning (the single surviving linear combination); for MIA and
// RIA it holds the minimal chain of layers pruning kept.
type Model struct {
	Family    FamilyKind
	PolyType  PolynomialType
	InputCols int
	Layers    []Layer
}
