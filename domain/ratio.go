package domain

import "encoding/json"

// Ratio is a metric that may have no meaningful value, e.g. DSCR without debt.
type Ratio struct {
	Value      float64
	Applicable bool
}

func Finite(v float64) Ratio {
	return Ratio{Value: v, Applicable: true}
}

func NotApplicable() Ratio {
	return Ratio{}
}

// MarshalJSON encodes a non-applicable ratio as null.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Applicable {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = NotApplicable()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Finite(v)
	return nil
}
