package domain

import (
	"encoding/json"
	"testing"
)

func TestUserUpdate_AbsentFieldsExcluded(t *testing.T) {
	var upd UserUpdate
	if err := json.Unmarshal([]byte(`{"email":"a@b.com"}`), &upd); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !upd.EmailSet || upd.Email != "a@b.com" {
		t.Fatalf("email not captured: %+v", upd)
	}
	if upd.FullNameSet || upd.RoleSet || upd.CompanyIDSet || upd.ActiveSet {
		t.Fatalf("absent fields must stay unset: %+v", upd)
	}
}

func TestUserUpdate_NullClearsCompany(t *testing.T) {
	var upd UserUpdate
	if err := json.Unmarshal([]byte(`{"empresa_id":null}`), &upd); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !upd.CompanyIDSet {
		t.Fatalf("empresa_id:null must count as present")
	}
	if upd.CompanyID != nil {
		t.Fatalf("empresa_id:null must clear the reference, got %v", *upd.CompanyID)
	}
}

func TestUserUpdate_CompanyValue(t *testing.T) {
	var upd UserUpdate
	if err := json.Unmarshal([]byte(`{"empresa_id":9}`), &upd); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !upd.CompanyIDSet || upd.CompanyID == nil || *upd.CompanyID != 9 {
		t.Fatalf("empresa_id value not captured: %+v", upd)
	}
}

func TestUserUpdate_NullRejectedElsewhere(t *testing.T) {
	for _, body := range []string{`{"email":null}`, `{"rol":null}`, `{"activo":null}`, `{"nombre_completo":null}`} {
		var upd UserUpdate
		if err := json.Unmarshal([]byte(body), &upd); err == nil {
			t.Fatalf("expected error for %s", body)
		}
	}
}

func TestUserUpdate_UnrecognizedKeysIgnored(t *testing.T) {
	var upd UserUpdate
	if err := json.Unmarshal([]byte(`{"password":"nope","activo":false}`), &upd); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !upd.ActiveSet || upd.Active {
		t.Fatalf("activo:false not captured: %+v", upd)
	}
	if upd.EmailSet || upd.FullNameSet || upd.RoleSet || upd.CompanyIDSet {
		t.Fatalf("unrecognized key leaked into update: %+v", upd)
	}
}

func TestUserUpdate_Empty(t *testing.T) {
	var upd UserUpdate
	if err := json.Unmarshal([]byte(`{"unknown":1}`), &upd); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !upd.Empty() {
		t.Fatalf("update with only unrecognized keys must be empty")
	}

	upd.ActiveSet = true
	if upd.Empty() {
		t.Fatalf("update with a set field must not be empty")
	}
}
