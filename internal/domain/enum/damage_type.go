package enum

import "encoding/json"

// DamageType distinguishes the two kinds of shrinkage the ledger tracks.
type DamageType string

const (
	DamageTypeDamaged DamageType = "damaged"
	DamageTypeStolen  DamageType = "stolen"
)

func (t DamageType) String() string {
	return string(t)
}

// Valid reports whether t is a known shrinkage type.
func (t DamageType) Valid() bool {
	return t == DamageTypeDamaged || t == DamageTypeStolen
}

func (t DamageType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *DamageType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = DamageType(str)
	return nil
}
