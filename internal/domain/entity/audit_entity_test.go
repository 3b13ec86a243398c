package entity

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestAudit_MissingTimestampsStayMissing(t *testing.T) {
	var u User
	if err := json.Unmarshal([]byte(`{"id":1,"email":"a@b.co","role":"ADMIN"}`), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{"createdAt", "updatedAt", "0001-01-01"} {
		if strings.Contains(string(raw), field) {
			t.Fatalf("unexpected %q in %s", field, raw)
		}
	}
}

func TestAudit_TimestampsSurviveReencode(t *testing.T) {
	var p ServicePlan
	if err := json.Unmarshal([]byte(`{"id":2,"name":"Pro","createdAt":"2026-03-01T08:00:00Z"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	if p.CreatedAt == nil || !p.CreatedAt.Equal(want) || p.UpdatedAt != nil {
		t.Fatalf("unexpected audit %+v", p.Audit)
	}

	raw, _ := json.Marshal(p)
	var back ServicePlan
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal again: %v", err)
	}
	if back.CreatedAt == nil || !back.CreatedAt.Equal(want) || strings.Contains(string(raw), "updatedAt") {
		t.Fatalf("re-encoded audit changed: %s", raw)
	}
}
