package company

import (
	"encoding/json"
	"time"
)

type Company struct {
	ID            int64
	Name          string
	RFC           string
	Address       *string
	Configuration json.RawMessage
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
