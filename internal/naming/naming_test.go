package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "a", want: "A"},
		{name: "single digit", input: "1", want: "1"},

		{name: "snake_case simple", input: "user_profile", want: "UserProfile"},
		{name: "snake_case three words", input: "get_user_by_id", want: "GetUserById"},
		{name: "leading underscore", input: "_private", want: "Private"},
		{name: "double underscore", input: "double__under", want: "DoubleUnder"},
		{name: "kebab-case", input: "api-client", want: "ApiClient"},
		{name: "dot separator", input: "com.example.api", want: "ComExampleApi"},
		{name: "path-like", input: "/api/v1/users", want: "ApiV1Users"},
		{name: "spaces and brackets", input: "Pet (v2)", want: "PetV2"},

		{name: "already PascalCase", input: "UserProfile", want: "UserProfile"},
		{name: "all caps preserved", input: "API", want: "API"},
		{name: "camelCase", input: "userID", want: "UserID"},

		{name: "unicode lowercase", input: "über_user", want: "ÜberUser"},
		{name: "japanese characters", input: "日本語_test", want: "日本語Test"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.input))
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "camelCase", input: "listModels", want: "list_models"},
		{name: "PascalCase", input: "UserProfile", want: "user_profile"},
		{name: "leading acronym", input: "APIClient", want: "api_client"},
		{name: "inner acronym", input: "getHTTPResponse", want: "get_http_response"},
		{name: "trailing acronym", input: "userID", want: "user_id"},
		{name: "digits", input: "v2Users", want: "v2_users"},
		{name: "kebab-case", input: "list-models", want: "list_models"},
		{name: "mixed separators", input: "get-user.by/id", want: "get_user_by_id"},
		{name: "already snake", input: "create_chat_completion", want: "create_chat_completion"},
		{name: "repeated separators collapse", input: "a--b__c", want: "a_b_c"},
		{name: "leading and trailing separators", input: "_a_b_", want: "a_b"},
		{name: "all caps", input: "API", want: "api"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnakeCase(tt.input))
		})
	}
}

func TestToGoName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"pet", "Pet"},
		{"created_at", "CreatedAt"},
		{"123", "T123"},
		{"404_response", "T404Response"},
		{"type", "Type_"},
		{"range", "Range_"},
		{"error", "Error"},
		{"$$$", "Field"},
		{"", "Field"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToGoName(tt.input, "Field"))
		})
	}
}

func TestEscapeKeyword(t *testing.T) {
	assert.Equal(t, "map_", EscapeKeyword("map"))
	assert.Equal(t, "Struct_", EscapeKeyword("Struct"))
	assert.Equal(t, "Model", EscapeKeyword("Model"))
}
