package validation

import (
	"encoding/json"
	"errors"
	"testing"
)

type signup struct {
	Email   string `json:"email" binding:"required,email"`
	Pass    string `json:"password" binding:"required,pwd"`
	Confirm string `json:"confirmPassword" binding:"required,eqfield=Pass"`
	Code    string `json:"code" binding:"required,otp"`
	Phone   string `json:"phoneNumber" binding:"omitempty,phone"`
	Plan    int    `json:"plan" binding:"omitempty,min=1"`
	Kind    string `json:"type" binding:"omitempty,oneof=REGISTER FORGOT_PASSWORD"`
}

func messages(t *testing.T, v any) map[string]string {
	t.Helper()
	err := Struct(v)
	if err == nil {
		return nil
	}
	out := map[string]string{}
	for _, fe := range ToFieldErrors(err) {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestStruct(t *testing.T) {
	Init()

	valid := signup{Email: "a@b.co", Pass: "secret1", Confirm: "secret1", Code: "123456"}
	if got := messages(t, valid); got != nil {
		t.Fatalf("expected valid, got %v", got)
	}

	cases := []struct {
		name  string
		edit  func(s *signup)
		field string
		msg   string
	}{
		{"missing email", func(s *signup) { s.Email = "" }, "email", "is required"},
		{"bad email", func(s *signup) { s.Email = "nope" }, "email", "must be a valid email"},
		{"short password", func(s *signup) { s.Pass, s.Confirm = "123", "123" }, "password", "must be between 6 and 100 characters long"},
		{"mismatch", func(s *signup) { s.Confirm = "other12" }, "confirmPassword", "must match Pass"},
		{"otp letters", func(s *signup) { s.Code = "12ab56" }, "code", "must be a 6 digit code"},
		{"phone", func(s *signup) { s.Phone = "12" }, "phoneNumber", "must be a valid phone number"},
		{"number min", func(s *signup) { s.Plan = -1 }, "plan", "must be at least 1"},
		{"oneof", func(s *signup) { s.Kind = "LOGIN" }, "type", "must be one of: REGISTER, FORGOT_PASSWORD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.edit(&s)
			got := messages(t, s)
			if got[tc.field] != tc.msg {
				t.Fatalf("%s: got %q (all: %v), want %q", tc.field, got[tc.field], got, tc.msg)
			}
		})
	}
}

func TestToFieldErrors_Decode(t *testing.T) {
	var dst struct {
		Page int `json:"page"`
	}
	err := json.Unmarshal([]byte(`{"page":"x"}`), &dst)
	fes := ToFieldErrors(err)
	if len(fes) != 1 || fes[0].Field != "page" || fes[0].Message != "has an invalid type" {
		t.Fatalf("type error: %+v", fes)
	}

	err = json.Unmarshal([]byte(`{"page":`), &dst)
	if fes := ToFieldErrors(err); len(fes) != 1 || fes[0].Field != "payload" {
		t.Fatalf("syntax error: %+v", fes)
	}

	if fes := ToFieldErrors(errors.New("eof")); len(fes) != 1 || fes[0].Message != "invalid payload" {
		t.Fatalf("fallback: %+v", fes)
	}
	if ToFieldErrors(nil) != nil {
		t.Fatal("nil error must give no field errors")
	}
}
