package tender

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func validInput() TenderInput {
	return TenderInput{
		Title:                 "Supply of Bitumen VG-30 for road works",
		WorkDescription:       "1400 MT over 2 years",
		TenderReferenceNumber: "TND-001",
		TenderID:              "T1",
		BidSubmissionEndDate:  "2026-02-09T13:00:00",
		Organisation:          "PWD Lucknow",
		TenderType:            "Open",
		ProductCategory:       "Bitumen",
		EMDAmount:             "19133",
		PeriodOfWorkDays:      "730",
	}
}

func TestValidateAcceptsRequiredOnly(t *testing.T) {
	in := validInput()
	if err := Validate(&in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateNamesMissingField(t *testing.T) {
	in := validInput()
	in.BidSubmissionEndDate = ""

	err := Validate(&in)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Violations) != 1 {
		t.Fatalf("expected 1 violation, got %v", verr.Violations)
	}
	if verr.Violations[0].Field != "bidSubmissionEndDate" {
		t.Fatalf("expected bidSubmissionEndDate, got %q", verr.Violations[0].Field)
	}
}

func TestValidateListsEveryViolation(t *testing.T) {
	in := TenderInput{Title: "only title"}

	err := Validate(&in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	// 10 required fields, one provided.
	if len(verr.Violations) != 9 {
		t.Fatalf("expected 9 violations, got %d: %v", len(verr.Violations), verr.Violations)
	}
}

func TestPromptJSONOmitsEmptyOptionals(t *testing.T) {
	in := validInput()
	payload, err := in.PromptJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(payload, "workLocation") {
		t.Fatalf("empty optional field serialized:\n%s", payload)
	}
	if !strings.Contains(payload, `"tenderReferenceNumber": "TND-001"`) {
		t.Fatalf("required field missing from payload:\n%s", payload)
	}
}

func TestPromptJSONRoundTrip(t *testing.T) {
	in := validInput()
	in.WorkLocation = "Lucknow"
	in.PaymentInstruments = []string{"DD", "BG"}

	payload, err := in.PromptJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var back TenderInput
	if err := json.Unmarshal([]byte(payload), &back); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if !reflect.DeepEqual(back, in) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", back, in)
	}
}
