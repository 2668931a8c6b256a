package blockenc

import (
	"fmt"
	"math"

	"github.com/qoracle-xyz/go-qoracle/oracle"
)

// AmplitudeEncoding is the rotation/phase view of one matrix entry:
// theta in [0, pi] and phase in {0, pi}.
type AmplitudeEncoding struct {
	Value         float64
	NormalizedAbs float64
	Theta         float64
	Phase         float64
}

// FullDataLoadingAmplitudeOracle maps entries of a binary entry oracle to
// rotation/phase data. This is the full data-loading variant: every entry is
// loaded classically as a fixed-point bit string before being mapped.
type FullDataLoadingAmplitudeOracle struct {
	Entry *oracle.EntryBinaryOracle
	Alpha float64
}

// Encode looks up the decoded entry value and derives its amplitude
// encoding: normalizedAbs = min(|v|/alpha, 1), theta = 2*asin(sqrt(.)),
// phase = 0 for non-negative values and pi otherwise.
func (o *FullDataLoadingAmplitudeOracle) Encode(row, col int) (AmplitudeEncoding, error) {
	if o.Alpha <= 0 {
		return AmplitudeEncoding{}, fmt.Errorf("%w: alpha must be positive, got %v", ErrConfiguration, o.Alpha)
	}
	value, err := o.Entry.LookupValue(row, col)
	if err != nil {
		return AmplitudeEncoding{}, err
	}
	normalizedAbs := math.Min(math.Abs(value)/o.Alpha, 1.0)
	theta := 2.0 * math.Asin(math.Sqrt(normalizedAbs))
	phase := 0.0
	if value < 0 {
		phase = math.Pi
	}

	return AmplitudeEncoding{
		Value:         value,
		NormalizedAbs: normalizedAbs,
		Theta:         theta,
		Phase:         phase,
	}, nil
}
