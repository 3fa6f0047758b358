package gmdh

import (
	"encoding/json"
	"os"
)

// jsonCombo and jsonModel are Model's wire format: a flat, family-agnostic
// JSON document, following this package's save/load-by-marshal idiom.
type jsonCombo struct {
	Indices []int     `json:"indices"`
	Coeffs  []float64 `json:"coeffs"`
	Score   float64   `json:"score"`
}

type jsonLayer struct {
	Combinations []jsonCombo `json:"combinations"`
}

type jsonModel struct {
	Family    string      `json:"family"`
	PolyType  string      `json:"poly_type"`
	InputCols int         `json:"input_cols"`
	Layers    []jsonLayer `json:"layers"`
}

func (p PolynomialType) String() string {
	switch p {
	case Linear:
		return "linear"
	case LinearCov:
		return "linear_cov"
	default:
		return "quadratic"
	}
}

func polynomialTypeFromString(s string) (PolynomialType, bool) {
	switch s {
	case "linear":
		return Linear, true
	case "linear_cov":
		return LinearCov, true
	case "quadratic":
		return Quadratic, true
	default:
		return 0, false
	}
}

func familyFromString(s string) (FamilyKind, bool) {
	switch s {
	case "COMBI":
		return COMBI, true
	case "MULTI":
		return MULTI, true
	case "MIA":
		return MIA, true
	case "RIA":
		return RIA, true
	default:
		return 0, false
	}
}

func (m *Model) toJSON() jsonModel {
	jm := jsonModel{
		Family:    m.Family.String(),
		PolyType:  m.PolyType.String(),
		InputCols: m.InputCols,
	}
	for _, l := range m.Layers {
		jl := jsonLayer{Combinations: make([]jsonCombo, len(l.Combinations))}
		for i, c := range l.Combinations {
			jl.Combinations[i] = jsonCombo{Indices: c.Indices, Coeffs: c.Coeffs, Score: c.Score}
		}
		jm.Layers = append(jm.Layers, jl)
	}
	return jm
}

// Save writes m to path as JSON. The only errors Save returns are
// *PersistError with Code == PersistIOFailure.
func (m *Model) Save(path string) error {
	b, err := json.MarshalIndent(m.toJSON(), "", "  ")
	if err != nil {
		return persistErr(PersistIOFailure, ErrPersist, "Save: marshal failed: "+err.Error())
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return persistErr(PersistIOFailure, ErrPersist, "Save: write failed: "+err.Error())
	}
	return nil
}

// Load reads a Model previously written by Save. Errors are always
// *PersistError: PersistIOFailure if path can't be read, PersistMalformed
// if the contents aren't a well-formed Model document.
func Load(path string) (*Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, persistErr(PersistIOFailure, ErrPersist, "Load: read failed: "+err.Error())
	}

	var jm jsonModel
	if err := json.Unmarshal(b, &jm); err != nil {
		return nil, persistErr(PersistMalformed, ErrPersist, "Load: malformed document: "+err.Error())
	}

	family, ok := familyFromString(jm.Family)
	if !ok {
		return nil, persistErr(PersistMalformed, ErrPersist, "Load: unrecognized family "+jm.Family)
	}
	polyType, ok := polynomialTypeFromString(jm.PolyType)
	if !ok {
		return nil, persistErr(PersistMalformed, ErrPersist, "Load: unrecognized polynomial type "+jm.PolyType)
	}
	if jm.InputCols <= 0 || len(jm.Layers) == 0 {
		return nil, persistErr(PersistMalformed, ErrPersist, "Load: document has no input columns or layers")
	}

	m := &Model{Family: family, PolyType: polyType, InputCols: jm.InputCols}
	for _, jl := range jm.Layers {
		l := Layer{Combinations: make([]Combination, len(jl.Combinations))}
		for i, jc := range jl.Combinations {
			l.Combinations[i] = Combination{Indices: jc.Indices, Coeffs: jc.Coeffs, Score: jc.Score}
		}
		m.Layers = append(m.Layers, l)
	}
	return m, nil
}

// loadExpecting loads path and additionally requires the persisted family
// to match want, returning PersistWrongFamily otherwise.
func loadExpecting(path string, want FamilyKind) (*Model, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	if m.Family != want {
		return nil, persistErr(PersistWrongFamily, ErrPersist,
			"Load: document holds a "+m.Family.String()+" model, not "+want.String())
	}
	return m, nil
}

// LoadCOMBI loads path and requires it to hold a COMBI model.
func LoadCOMBI(path string) (*Model, error) { return loadExpecting(path, COMBI) }

// LoadMULTI loads path and requires it to hold a MULTI model.
func LoadMULTI(path string) (*Model, error) { return loadExpecting(path, MULTI) }

// LoadMIA loads path and requires it to hold a MIA model.
func LoadMIA(path string) (*Model, error) { return loadExpecting(path, MIA) }

// LoadRIA loads path and requires it to hold a RIA model.
func LoadRIA(path string) (*Model, error) { return loadExpecting(path, RIA) }
