package schema

import (
	"strings"
	"testing"
)

type sampleNested struct {
	Level string `json:"level" validate:"required,oneof=High Medium Low"`
}

type sampleRecord struct {
	Name    string         `json:"name" validate:"required"`
	Score   *int           `json:"score" validate:"required,min=0,max=100"`
	Mode    string         `json:"mode" validate:"required,oneof='Plan A' 'Plan B'"`
	Entries []sampleNested `json:"entries" validate:"min=1,dive"`
}

func intPtr(v int) *int { return &v }

func TestStructValidRecord(t *testing.T) {
	rec := sampleRecord{
		Name:    "ok",
		Score:   intPtr(0),
		Mode:    "Plan A",
		Entries: []sampleNested{{Level: "High"}},
	}

	if violations := Struct(&rec); violations != nil {
		t.Fatalf("expected no violations, got %v", violations)
	}
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	rec := sampleRecord{
		Score:   intPtr(150),
		Mode:    "Plan C",
		Entries: []sampleNested{{Level: "Critical"}},
	}

	violations := Struct(&rec)
	if len(violations) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(violations), violations)
	}

	byField := map[string]string{}
	for _, v := range violations {
		byField[v.Field] = v.Reason
	}

	if byField["name"] != "is required" {
		t.Fatalf("unexpected name violation: %q", byField["name"])
	}
	if byField["score"] != "must be at most 100" {
		t.Fatalf("unexpected score violation: %q", byField["score"])
	}
	if !strings.Contains(byField["mode"], "Plan A, Plan B") {
		t.Fatalf("unexpected mode violation: %q", byField["mode"])
	}
	if byField["entries[0].level"] == "" {
		t.Fatalf("expected nested violation for entries[0].level, got %v", violations)
	}
}

func TestStructRejectsEmptySlice(t *testing.T) {
	rec := sampleRecord{
		Name:    "ok",
		Score:   intPtr(50),
		Mode:    "Plan B",
		Entries: []sampleNested{},
	}

	violations := Struct(&rec)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %v", violations)
	}
	if violations[0].Field != "entries" {
		t.Fatalf("expected entries violation, got %q", violations[0].Field)
	}
	if violations[0].Reason != "must contain at least 1 element(s)" {
		t.Fatalf("unexpected reason: %q", violations[0].Reason)
	}
}

func TestJoinViolations(t *testing.T) {
	got := JoinViolations([]Violation{
		{Field: "name", Reason: "is required"},
		{Reason: "malformed JSON"},
	})
	if got != "name is required; malformed JSON" {
		t.Fatalf("unexpected join: %q", got)
	}
}
