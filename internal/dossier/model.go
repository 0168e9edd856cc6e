package dossier

// LeadDossier is the validated enrichment result for one tender. Bounded
// scores are pointer-typed so a missing field is distinguishable from a
// legitimate zero; after validation they are guaranteed non-nil and in
// [0,100].
type LeadDossier struct {
	LeadScore           *int                    `json:"lead_score" validate:"required,min=0,max=100"`
	Urgency             string                  `json:"urgency" validate:"required,oneof=High Medium Low"`
	Confidence          *int                    `json:"confidence" validate:"required,min=0,max=100"`
	Signals             []Signal                `json:"signals" validate:"min=1,dive"`
	ProductsRecommended []ProductRecommendation `json:"products_recommended" validate:"min=1,dive"`
	NextActions         NextActions             `json:"next_actions"`
	SalesOwner          string                  `json:"sales_owner" validate:"required"`
	FieldOfficer        string                  `json:"field_officer" validate:"required"`
	Region              string                  `json:"region" validate:"required"`
	CreatedAt           string                  `json:"created_at" validate:"required"`
	Source              string                  `json:"source" validate:"required,oneof=eprocure tender_portal news other"`
	TenderReference     string                  `json:"tender_reference" validate:"required"`
	ProcurementChannel  string                  `json:"procurement_channel" validate:"required"`
}

// Signal is one piece of evidence extracted from the tender text.
type Signal struct {
	Type       string         `json:"type" validate:"required,oneof=Tender Keywords 'Work Description' 'Budget Signal'"`
	Keyword    string         `json:"keyword" validate:"required"`
	Source     string         `json:"source" validate:"required"`
	Summary    string         `json:"summary" validate:"required"`
	Date       string         `json:"date" validate:"required"`
	TrustScore *int           `json:"trust_score" validate:"required,min=0,max=100"`
	Details    *SignalDetails `json:"details,omitempty"`
}

// SignalDetails carries optional supporting facts behind a signal.
type SignalDetails struct {
	TenderValue    string `json:"tender_value,omitempty"`
	Quantity       string `json:"quantity,omitempty"`
	DeliveryPeriod string `json:"delivery_period,omitempty"`
	Organization   string `json:"organization,omitempty"`
}

// ProductRecommendation maps tender requirements to one product line.
type ProductRecommendation struct {
	ProductName     string   `json:"product_name" validate:"required"`
	Confidence      *int     `json:"confidence" validate:"required,min=0,max=100"`
	ReasonCode      string   `json:"reason_code" validate:"required"`
	EstimatedVolume string   `json:"estimated_volume" validate:"required"`
	MarginPotential string   `json:"margin_potential" validate:"required,oneof=High Medium Low"`
	MatchEvidence   []string `json:"match_evidence" validate:"min=1,dive,required"`
	CompetitorRisk  string   `json:"competitor_risk,omitempty"`
}

// NextActions is the suggested follow-up for the sales team.
type NextActions struct {
	SuggestedAction string `json:"suggested_action" validate:"required,oneof=Call Email 'Schedule Meeting' 'Send Proposal'"`
	Timing          string `json:"timing" validate:"required"`
	Context         string `json:"context" validate:"required"`
	ContactTrigger  string `json:"contact_trigger" validate:"required"`
	ReferenceNumber string `json:"reference_number" validate:"required"`
}
