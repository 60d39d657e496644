package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"preinscription-chatbot/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 123_000_000, time.FixedZone("WAT", 3600))

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if want := `"2024-05-01T14:30:00.123Z"`; string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	tm := time.Date(2024, 9, 2, 8, 0, 0, 0, time.UTC)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got response.DateTime
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !time.Time(got).Equal(tm) {
		t.Errorf("expected %v, got %v", tm, time.Time(got))
	}
}

func TestDateTimeUnmarshalJSON_Invalid(t *testing.T) {
	var d response.DateTime
	if err := json.Unmarshal([]byte(`"yesterday"`), &d); err == nil {
		t.Error("expected an error for a non RFC 3339 value")
	}
}
