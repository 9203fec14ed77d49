package twitter

import (
	"errors"
	"testing"
)

func TestUserQueryValidate(t *testing.T) {
	tests := []struct {
		name string
		q    UserQuery
		want error
	}{
		{"username only", UserQuery{Username: "elonmusk"}, nil},
		{"user id only", UserQuery{UserID: "44196397"}, nil},
		{"neither", UserQuery{}, ErrNoIdentifier},
		{"both", UserQuery{Username: "elonmusk", UserID: "44196397"}, ErrBothIdentifiers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.q.validate(); !errors.Is(err, tt.want) {
				t.Fatalf("validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUserQueryParams(t *testing.T) {
	if p := (UserQuery{Username: "jack"}).params(); p["username"] != "jack" || len(p) != 1 {
		t.Fatalf("unexpected params %v", p)
	}
	if p := (UserQuery{UserID: "12"}).params(); p["user_id"] != "12" || len(p) != 1 {
		t.Fatalf("unexpected params %v", p)
	}
}

func TestIsTransportError(t *testing.T) {
	if IsTransportError(nil) {
		t.Fatal("nil is not a transport error")
	}
	if IsTransportError(ErrNoIdentifier) {
		t.Fatal("validation errors are not transport errors")
	}
}
