package highlights

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
)

const (
	errPlayerIDEmpty = "player ID cannot be empty"
)

// encode renders ids as a JSON array; nil encodes as []
func encode(ids []string) ([]byte, error) {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal highlights")
	}
	return data, nil
}

func decode(data []byte) ([]string, error) {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored highlights are malformed")
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
