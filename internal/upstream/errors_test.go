package upstream

import (
	"testing"
)

func TestFailureMessageExtractionCascade(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "detail array of objects with msg",
			body: `{"detail":[{"msg":"positions must not be empty"},{"msg":"locations must not be empty"}]}`,
			want: "positions must not be empty, locations must not be empty",
		},
		{
			name: "detail array entry without msg is stringified",
			body: `{"detail":[{"loc":["body","positions"]}]}`,
			want: `{"loc":["body","positions"]}`,
		},
		{
			name: "single object detail msg",
			body: `{"detail":{"msg":"config is locked"}}`,
			want: "config is locked",
		},
		{
			name: "single object detail without msg is stringified",
			body: `{"detail":{"code":42}}`,
			want: `{"code":42}`,
		},
		{
			name: "plain string detail",
			body: `{"detail":"subscription expired"}`,
			want: "subscription expired",
		},
		{
			name: "message field fallback",
			body: `{"message":"internal error"}`,
			want: "internal error",
		},
		{
			name: "empty body",
			body: "",
			want: GenericFailureMessage,
		},
		{
			name: "unparseable body",
			body: `<html>502 Bad Gateway</html>`,
			want: GenericFailureMessage,
		},
		{
			name: "empty object",
			body: `{}`,
			want: GenericFailureMessage,
		},
		{
			name: "null detail with message",
			body: `{"detail":null,"message":"try later"}`,
			want: "try later",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			failure := NewHTTPFailure(500, []byte(tc.body))
			if got := failure.Message(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFailureMessageNeverPanics(t *testing.T) {
	var nilFailure *Failure
	if got := nilFailure.Message(); got != GenericFailureMessage {
		t.Errorf("nil failure should yield generic message, got %q", got)
	}

	empty := &Failure{}
	if got := empty.Message(); got != GenericFailureMessage {
		t.Errorf("zero failure should yield generic message, got %q", got)
	}
}

func TestValidationFailureMessage(t *testing.T) {
	failure := NewValidationFailure("at least one position is required", "positions")
	if failure.Kind != FailureKindValidation {
		t.Errorf("expected validation kind, got %q", failure.Kind)
	}
	if got := failure.Message(); got != "at least one position is required" {
		t.Errorf("unexpected message %q", got)
	}
	if failure.Error() != failure.Message() {
		t.Error("Error() must match Message()")
	}
}
