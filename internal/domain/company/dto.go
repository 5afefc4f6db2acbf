package company

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
)

type CompanyRequest struct {
	ID            int64           `json:"-"`
	Name          string          `json:"name"`
	RFC           string          `json:"rfc"`
	Address       *string         `json:"address"`
	Configuration json.RawMessage `json:"configuration"`
	Active        *bool           `json:"active,omitempty"`
}

// Validate checks the request and upper-cases the RFC.
func (r *CompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if validator.TooLong(r.Name, 200) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 200 characters"})
	}

	r.RFC = strings.ToUpper(strings.TrimSpace(r.RFC))
	if !validator.IsValidRFC(r.RFC) {
		errs = append(errs, validator.ValidationError{Field: "rfc", Message: "rfc must be a valid 12 or 13 character RFC"})
	}

	if r.Address != nil && validator.TooLong(*r.Address, 500) {
		errs = append(errs, validator.ValidationError{Field: "address", Message: "address must not exceed 500 characters"})
	}

	if len(r.Configuration) > 0 && !bytes.Equal(r.Configuration, []byte("null")) {
		var obj map[string]any
		if err := json.Unmarshal(r.Configuration, &obj); err != nil {
			errs = append(errs, validator.ValidationError{Field: "configuration", Message: ErrInvalidSettings.Error()})
		}
	} else {
		r.Configuration = nil
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompanyResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	RFC           string          `json:"rfc"`
	Address       *string         `json:"address"`
	Configuration json.RawMessage `json:"configuration,omitempty"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     *time.Time      `json:"updatedAt"`
}

func ToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		RFC:           c.RFC,
		Address:       c.Address,
		Configuration: c.Configuration,
		Active:        c.Active,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
