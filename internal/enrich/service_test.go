package enrich

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nirmitsaini1024/Productathon-26/internal/dossier"
	"github.com/nirmitsaini1024/Productathon-26/internal/llm"
	"github.com/nirmitsaini1024/Productathon-26/internal/tender"
)

const stubDossierJSON = `{
	"lead_score": 85,
	"urgency": "High",
	"confidence": 90,
	"signals": [
		{
			"type": "Tender",
			"keyword": "bitumen",
			"source": "title",
			"summary": "Open tender for VG-30 bitumen supply",
			"date": "2026-02-09T13:00:00",
			"trust_score": 95
		}
	],
	"products_recommended": [
		{
			"product_name": "Paving Grade Bitumen VG-30",
			"confidence": 92,
			"reason_code": "Tender explicitly requests VG-30 for road works",
			"estimated_volume": "1400 MT/2 years",
			"margin_potential": "High",
			"match_evidence": ["Supply of Bitumen VG-30"]
		}
	],
	"next_actions": {
		"suggested_action": "Call",
		"timing": "Within 24 hours",
		"context": "Tender response deadline: Feb 9, 1:00 PM",
		"contact_trigger": "Procurement Manager",
		"reference_number": "TND-001"
	},
	"sales_owner": "Regional Manager - North",
	"field_officer": "Sales Officer - Uttar Pradesh",
	"region": "North",
	"created_at": "2026-02-05T10:30:00Z",
	"source": "eprocure",
	"tender_reference": "TND-001",
	"procurement_channel": "eProcure Government Tender"
}`

type stubClient struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubClient) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestService(client llm.Client) *Service {
	return NewService(ServiceDeps{
		Client: client,
		Now:    func() time.Time { return fixedTime },
	})
}

func TestEnrichReturnsValidatedDossier(t *testing.T) {
	stub := &stubClient{response: stubDossierJSON}
	svc := newTestService(stub)

	in := sampleTender()
	d, err := svc.Enrich(context.Background(), &in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *d.LeadScore != 85 || d.Urgency != "High" || d.TenderReference != "TND-001" {
		t.Fatalf("dossier not returned unchanged: %+v", d)
	}
	if stub.calls != 1 {
		t.Fatalf("expected exactly 1 completion call, got %d", stub.calls)
	}
	if !strings.Contains(stub.lastPrompt, `"tenderId": "T1"`) {
		t.Fatal("instruction did not include the tender payload")
	}
}

func TestEnrichRejectsInvalidInputBeforeCompletion(t *testing.T) {
	stub := &stubClient{response: stubDossierJSON}
	svc := newTestService(stub)

	in := sampleTender()
	in.BidSubmissionEndDate = ""

	_, err := svc.Enrich(context.Background(), &in)
	var verr *tender.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *tender.ValidationError, got %v", err)
	}
	if verr.Violations[0].Field != "bidSubmissionEndDate" {
		t.Fatalf("expected bidSubmissionEndDate violation, got %+v", verr.Violations)
	}
	if stub.calls != 0 {
		t.Fatalf("completion must not be called for invalid input, got %d calls", stub.calls)
	}
}

func TestEnrichSurfacesModelOutputViolations(t *testing.T) {
	raw := strings.Replace(stubDossierJSON, `"lead_score": 85`, `"lead_score": 150`, 1)
	svc := newTestService(&stubClient{response: raw})

	in := sampleTender()
	_, err := svc.Enrich(context.Background(), &in)

	var derr *dossier.ValidationError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *dossier.ValidationError, got %v", err)
	}
	if len(derr.Violations) != 1 || derr.Violations[0].Field != "lead_score" {
		t.Fatalf("expected lead_score violation, got %+v", derr.Violations)
	}
}

func TestEnrichSurfacesCompletionFailure(t *testing.T) {
	stub := &stubClient{err: &llm.CompletionError{Retryable: true, Message: "context deadline exceeded"}}
	svc := newTestService(stub)

	in := sampleTender()
	d, err := svc.Enrich(context.Background(), &in)
	if d != nil {
		t.Fatal("no dossier may be returned on completion failure")
	}

	var cerr *llm.CompletionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *llm.CompletionError, got %v", err)
	}
	if !cerr.Retryable {
		t.Fatal("retryable flag lost in propagation")
	}
}
