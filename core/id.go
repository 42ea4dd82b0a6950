package core

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// ID is an opaque entity identifier assigned by the record store.
// The store serializes ids as JSON numbers or strings depending on how a
// record was seeded; ID normalizes both to a string so that equality
// comparisons never produce false negatives. This is the single shared
// normalization point: never compare raw store ids directly.
type ID string

func (id ID) IsZero() bool {
	return id == ""
}

func (id ID) String() string {
	return string(id)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var val interface{}
	if err := json.Unmarshal(data, &val); err != nil {
		return errors.Wrap(err, "unmarshalling ID")
	}
	switch v := val.(type) {
	case nil:
		*id = ""
	case string:
		*id = ID(v)
	case float64:
		*id = ID(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return errors.Errorf("unsupported ID type %T", val)
	}
	return nil
}
