package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UserUpdate is a sparse mutation of a user record. A field participates in
// the update only when its Set flag is true; an unset field leaves the stored
// value untouched. CompanyID is the one nullable field: Set with a nil value
// clears the reference. This absent-vs-null distinction is why the type
// unmarshals itself instead of relying on struct tags.
type UserUpdate struct {
	Email    string
	EmailSet bool

	FullName    string
	FullNameSet bool

	Role    string
	RoleSet bool

	CompanyID    *int64
	CompanyIDSet bool

	Active    bool
	ActiveSet bool
}

// Empty reports whether the update carries no recognized fields.
func (u UserUpdate) Empty() bool {
	return !u.EmailSet && !u.FullNameSet && !u.RoleSet && !u.CompanyIDSet && !u.ActiveSet
}

var jsonNull = []byte("null")

// UnmarshalJSON decodes the Spanish wire keys, recording which of them were
// present. Unrecognized keys are ignored. A null value is only legal for
// empresa_id, where it clears the company reference.
func (u *UserUpdate) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, val := range raw {
		isNull := bytes.Equal(bytes.TrimSpace(val), jsonNull)

		switch key {
		case "email":
			if isNull {
				return fmt.Errorf("email cannot be null")
			}
			if err := json.Unmarshal(val, &u.Email); err != nil {
				return fmt.Errorf("email: %w", err)
			}
			u.EmailSet = true
		case "nombre_completo":
			if isNull {
				return fmt.Errorf("nombre_completo cannot be null")
			}
			if err := json.Unmarshal(val, &u.FullName); err != nil {
				return fmt.Errorf("nombre_completo: %w", err)
			}
			u.FullNameSet = true
		case "rol":
			if isNull {
				return fmt.Errorf("rol cannot be null")
			}
			if err := json.Unmarshal(val, &u.Role); err != nil {
				return fmt.Errorf("rol: %w", err)
			}
			u.RoleSet = true
		case "empresa_id":
			if !isNull {
				if err := json.Unmarshal(val, &u.CompanyID); err != nil {
					return fmt.Errorf("empresa_id: %w", err)
				}
			}
			u.CompanyIDSet = true
		case "activo":
			if isNull {
				return fmt.Errorf("activo cannot be null")
			}
			if err := json.Unmarshal(val, &u.Active); err != nil {
				return fmt.Errorf("activo: %w", err)
			}
			u.ActiveSet = true
		}
	}

	return nil
}
