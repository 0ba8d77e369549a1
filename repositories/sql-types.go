package repositories

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonColumn stores a value as JSON text in a single column.
// It implements sql.Scanner and driver.Valuer.
type jsonColumn[T any] struct {
	V T
}

func (c *jsonColumn[T]) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		var zero T
		c.V = zero
		return nil
	case []byte:
		return json.Unmarshal(v, &c.V)
	case string:
		return json.Unmarshal([]byte(v), &c.V)
	default:
		return fmt.Errorf("unsupported type %T for json column", v)
	}
}

func (c jsonColumn[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(c.V)
	if err != nil {
		return nil, fmt.Errorf("marshalling json column: %w", err)
	}
	return string(b), nil
}
