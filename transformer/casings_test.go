package transformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "snake_case", input: "user_profile", want: "UserProfile"},
		{name: "kebab-case", input: "api-client", want: "ApiClient"},
		{name: "camelCase", input: "userProfile", want: "UserProfile"},
		{name: "three words", input: "get_user_by_id", want: "GetUserById"},
		{name: "single word", input: "user", want: "User"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PascalCase(tt.input), "PascalCase(%q)", tt.input)
		})
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "snake_case", input: "user_profile", want: "userProfile"},
		{name: "PascalCase", input: "UserProfile", want: "userProfile"},
		{name: "single letter", input: "A", want: "a"},
		{name: "three words", input: "get_user_by_id", want: "getUserById"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CamelCase(tt.input), "CamelCase(%q)", tt.input)
		})
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "PascalCase", input: "UserProfile", want: "user_profile"},
		{name: "camelCase", input: "userProfile", want: "user_profile"},
		{name: "already snake_case", input: "user_profile", want: "user_profile"},
		{name: "kebab-case", input: "api-client", want: "api_client"},
		{name: "all-caps run is one word", input: "APIClient", want: "apiclient"},
		{name: "digits", input: "ApiV2Client", want: "api_v2_client"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SnakeCase(tt.input), "SnakeCase(%q)", tt.input)
		})
	}
}

func TestKebabCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "PascalCase", input: "UserProfile", want: "user-profile"},
		{name: "snake_case", input: "user_profile", want: "user-profile"},
		{name: "already kebab-case", input: "user-profile", want: "user-profile"},
		{name: "three words", input: "GetUserById", want: "get-user-by-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KebabCase(tt.input), "KebabCase(%q)", tt.input)
		})
	}
}

func TestCasingsAgreeWithStartCase(t *testing.T) {
	// PascalCase is the start-case concatenation by definition.
	for _, input := range []string{"", "user_profile", "fooBarBaz", "HELLO", "a-b c"} {
		assert.Equal(t, StartCase(input), PascalCase(input), "PascalCase(%q)", input)
	}
}
