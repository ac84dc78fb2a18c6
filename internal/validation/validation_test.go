package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string  `json:"name" validate:"required,min=2,max=50,personname"`
	Phone    string  `json:"phone" validate:"required,phone_in"`
	Email    string  `json:"email" validate:"required,email,max=100"`
	Password string  `json:"password" validate:"required,min=6,max=20"`
	Role     string  `json:"role" validate:"required,oneof=seller buyer"`
	Pincode  string  `json:"pincode" validate:"omitempty,pincode"`
	Price    float64 `json:"price" validate:"omitempty,gt=0"`
}

func valid() signup {
	return signup{
		Name:     "Ramesh Kumar",
		Phone:    "98765 43210",
		Email:    "ramesh@example.com",
		Password: "secret1",
		Role:     "seller",
		Pincode:  "177001",
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "9876543210", want: "9876543210", ok: true},
		{in: "98765-43210", want: "9876543210", ok: true},
		{in: "+91 98765 43210", want: "9876543210", ok: true},
		{in: "919876543210", want: "9876543210", ok: true},
		{in: "5876543210", ok: false},
		{in: "987654321", ok: false},
		{in: "91587654321", ok: false},
		{in: "", ok: false},
		{in: "9876543५", ok: false},
		{in: "९८७६५४३२१०", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizePhone(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(valid()))
}

func TestStruct_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *signup)
		field  string
		msg    string
	}{
		{name: "missing name", mutate: func(s *signup) { s.Name = "" }, field: "name", msg: "is required"},
		{name: "short name", mutate: func(s *signup) { s.Name = "R" }, field: "name", msg: "must be at least 2 characters"},
		{name: "digits in name", mutate: func(s *signup) { s.Name = "R2D2" }, field: "name", msg: "must contain only letters and spaces"},
		{name: "bad phone", mutate: func(s *signup) { s.Phone = "12345" }, field: "phone", msg: "must be a valid 10-digit phone number"},
		{name: "bad email", mutate: func(s *signup) { s.Email = "ramesh@" }, field: "email", msg: "must be a valid email address"},
		{name: "long password", mutate: func(s *signup) { s.Password = "abcdefghijklmnopqrstu" }, field: "password", msg: "must not exceed 20 characters"},
		{name: "role", mutate: func(s *signup) { s.Role = "admin" }, field: "role", msg: "must be one of: seller, buyer"},
		{name: "pincode", mutate: func(s *signup) { s.Pincode = "01234" }, field: "pincode", msg: "must be a valid 6-digit pincode"},
		{name: "price", mutate: func(s *signup) { s.Price = -1 }, field: "price", msg: "must be greater than 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)

			err := Struct(s)
			var fe Errors
			require.True(t, errors.As(err, &fe))
			require.Len(t, fe, 1)
			assert.Equal(t, tt.field, fe[0].Field)
			assert.Equal(t, tt.msg, fe[0].Error)
		})
	}
}

func TestStruct_Multiple(t *testing.T) {
	err := Struct(signup{})
	var fe Errors
	require.True(t, errors.As(err, &fe))
	assert.Len(t, fe, 5)
	assert.Contains(t, err.Error(), "validation failed: name is required")
}

func TestStruct_NotAStruct(t *testing.T) {
	err := Struct(42)
	assert.Error(t, err)
	var fe Errors
	assert.False(t, errors.As(err, &fe))
}
