package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestUserFullName(t *testing.T) {
	testCases := []struct {
		name      string
		firstName *string
		lastName  *string
		expected  string
	}{
		{"BothNames", strPtr("John"), strPtr("Doe"), "John Doe"},
		{"FirstNameOnly", strPtr("John"), nil, "John"},
		{"LastNameOnly", nil, strPtr("Doe"), "john@example.com"},
		{"NoNames", nil, nil, "john@example.com"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user := &User{
				Email:     "john@example.com",
				FirstName: tc.firstName,
				LastName:  tc.lastName,
			}

			assert.Equal(t, tc.expected, user.FullName())
		})
	}
}
