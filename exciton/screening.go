package exciton

// ScreeningQuery asks for a screened interaction matrix element W_pqrs in an
// LMO basis, optionally frequency dependent.
type ScreeningQuery struct {
	P, Q, R, S int
	Omega      float64
}

// ScreenedInteractionProvider supplies screened Coulomb terms.
type ScreenedInteractionProvider interface {
	MatrixElement(q ScreeningQuery) (float64, error)
}

// ConstantScreening is a minimal placeholder screening model for early
// algorithm prototyping: every matrix element is the same constant.
type ConstantScreening struct {
	Value float64
}

// MatrixElement implements ScreenedInteractionProvider.
func (c ConstantScreening) MatrixElement(ScreeningQuery) (float64, error) {
	return c.Value, nil
}
