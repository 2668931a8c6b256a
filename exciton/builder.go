package exciton

import "fmt"

// Builder assembles exciton models from LMO quantities and a screening
// provider.
type Builder struct {
	NOrbitals int
	Partition OrbitalPartition
	Screening ScreenedInteractionProvider
}

// BuildMinimal builds a validated model carrying a single coupling term from
// a screening query. A placeholder until the full LMO pipeline lands.
func (b *Builder) BuildMinimal() (*Model, error) {
	model := NewModel(b.NOrbitals, b.Partition)
	if err := model.Validate(); err != nil {
		return nil, err
	}

	w, err := b.Screening.MatrixElement(ScreeningQuery{})
	if err != nil {
		return nil, fmt.Errorf("screening query: %w", err)
	}
	if err := model.AddTerm(Term{Label: "W_0000", Coefficient: w, Modes: []int{0}}); err != nil {
		return nil, err
	}
	model.Metadata["builder"] = "minimal"

	return model, nil
}
