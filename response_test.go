package twitter

import "testing"

func TestResponseJSON(t *testing.T) {
	resp := &Response{StatusCode: 200, Body: []byte(`{"name":"Jack","followers_count":12}`)}

	var user struct {
		Name      string `json:"name"`
		Followers int    `json:"followers_count"`
	}
	if err := resp.JSON(&user); err != nil {
		t.Fatal(err)
	}
	if user.Name != "Jack" || user.Followers != 12 {
		t.Fatalf("unexpected decode: %+v", user)
	}
}

func TestResponseJSONInvalidBody(t *testing.T) {
	resp := &Response{StatusCode: 200, Body: []byte(`{invalid`)}
	if err := resp.JSON(&struct{}{}); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestResponseIsSuccess(t *testing.T) {
	for status, want := range map[int]bool{200: true, 204: true, 301: false, 404: false, 500: false} {
		if got := (&Response{StatusCode: status}).IsSuccess(); got != want {
			t.Fatalf("IsSuccess(%d) = %v, want %v", status, got, want)
		}
	}
}
