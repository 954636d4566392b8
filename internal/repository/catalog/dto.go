package catalog

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/domain"
)

// itemToFields converts an item plus its vector into hash fields.
// The vector is stored as a little-endian FLOAT32 blob, the layout
// FT.SEARCH expects for HASH-backed vector fields.
func itemToFields(item domain.Item, vector []float32, wantDim int) (map[string]string, error) {
	if item.ID == "" {
		return nil, fmt.Errorf("item id is required")
	}
	if len(vector) != wantDim {
		return nil, fmt.Errorf("item %s: vector dimension %d, want %d", item.ID, len(vector), wantDim)
	}

	fields := item.Fields()
	fields[domain.FieldVector] = string(vectorBlob(vector))
	return fields, nil
}

func vectorBlob(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}
