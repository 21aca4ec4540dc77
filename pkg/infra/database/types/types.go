package types

import (
	"database/sql/driver"
	"fmt"

	"github.com/lib/pq"
)

// StringArray maps a []string onto a postgres text[] column.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	return pq.Array([]string(a)).Value()
}

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var strs []string
	if err := pq.Array(&strs).Scan(value); err != nil {
		return fmt.Errorf("failed to scan string array: %w", err)
	}

	*a = strs
	return nil
}

func (StringArray) GormDataType() string {
	return "text[]"
}
