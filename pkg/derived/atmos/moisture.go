package atmos

import (
	"fmt"

	"github.com/chrissnell/oceandiags/internal/log"
	"github.com/chrissnell/oceandiags/pkg/bundle"
)

// MixingRatioFromSpecificHumidity computes the water-vapor mixing ratio
// w = q/(1-q) (kg/kg) from the specific humidity profile. Mandatory bundle
// field: specific_humidity.
func MixingRatioFromSpecificHumidity(b *bundle.Bundle) (*bundle.Field, error) {
	if err := b.Require(FieldSpecificHumidity); err != nil {
		return nil, err
	}
	q, err := convertField(b.Get(FieldSpecificHumidity), "kg/kg")
	if err != nil {
		return nil, err
	}
	if err := bundle.CheckNonNegative(q); err != nil {
		return nil, err
	}
	log.Debugf("computing mixing ratio for %d specific humidity values", q.Len())

	out := &bundle.Field{
		Name:  "mixing_ratio",
		Data:  make([]float64, q.Len()),
		Shape: q.Shape,
		Units: "kg/kg",
	}
	for n, v := range q.Data {
		if v >= 1 {
			return nil, &bundle.DomainError{
				Field:  FieldSpecificHumidity,
				Reason: fmt.Sprintf("value %g is not a valid mass fraction", v),
			}
		}
		out.Data[n] = v / (1.0 - v)
	}
	return out, nil
}
