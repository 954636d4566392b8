package domain

import (
	"encoding/json"
	"testing"
)

func TestPreference_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Preference
	}{
		{"true is prefer", `{"remote": true}`, Prefer},
		{"false is avoid", `{"remote": false}`, Avoid},
		{"null is unset", `{"remote": null}`, Unset},
		{"absent is unset", `{}`, Unset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Remote Preference `json:"remote"`
			}
			if err := json.Unmarshal([]byte(tt.body), &payload); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if payload.Remote != tt.want {
				t.Errorf("got %v, want %v", payload.Remote, tt.want)
			}
		})
	}
}

func TestPreference_UnmarshalJSON_Invalid(t *testing.T) {
	var p Preference
	if err := json.Unmarshal([]byte(`"yes"`), &p); err == nil {
		t.Error("expected error for non-boolean preference")
	}
}

func TestPreference_MarshalRoundTrip(t *testing.T) {
	for _, p := range []Preference{Unset, Prefer, Avoid} {
		data, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("marshal %v: %v", p, err)
		}
		var back Preference
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != p {
			t.Errorf("round trip %v -> %s -> %v", p, data, back)
		}
	}
}

func TestPreference_IsSet(t *testing.T) {
	if Unset.IsSet() {
		t.Error("Unset.IsSet() = true")
	}
	if !Prefer.IsSet() || !Avoid.IsSet() {
		t.Error("Prefer/Avoid should report set")
	}
}
