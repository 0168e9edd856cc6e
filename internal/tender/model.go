package tender

import "encoding/json"

// TenderInput is one procurement opportunity as posted by the scraper.
// Field names follow the eProcure portal extract; optional fields are
// omitted from serialized output when empty.
type TenderInput struct {
	Keyword                string   `json:"keyword,omitempty"`
	Title                  string   `json:"title" validate:"required"`
	WorkTitle              string   `json:"workTitle,omitempty"`
	WorkDescription        string   `json:"workDescription" validate:"required"`
	Reference              string   `json:"reference,omitempty"`
	TenderReferenceNumber  string   `json:"tenderReferenceNumber" validate:"required"`
	TenderID               string   `json:"tenderId" validate:"required"`
	PublishedDate          string   `json:"publishedDate,omitempty"`
	PublishedDateFull      string   `json:"publishedDateFull,omitempty"`
	ClosingDate            string   `json:"closingDate,omitempty"`
	OpeningDate            string   `json:"openingDate,omitempty"`
	BidSubmissionStartDate string   `json:"bidSubmissionStartDate,omitempty"`
	BidSubmissionEndDate   string   `json:"bidSubmissionEndDate" validate:"required"`
	BidOpeningDateFull     string   `json:"bidOpeningDateFull,omitempty"`
	DocDownloadStartDate   string   `json:"docDownloadStartDate,omitempty"`
	DocDownloadEndDate     string   `json:"docDownloadEndDate,omitempty"`
	Organisation           string   `json:"organisation" validate:"required"`
	OrganisationChain      string   `json:"organisationChain,omitempty"`
	TenderType             string   `json:"tenderType" validate:"required"`
	TenderCategory         string   `json:"tenderCategory,omitempty"`
	ContractType           string   `json:"contractType,omitempty"`
	FormOfContract         string   `json:"formOfContract,omitempty"`
	ProductCategory        string   `json:"productCategory" validate:"required"`
	WithdrawalAllowed      string   `json:"withdrawalAllowed,omitempty"`
	EMDAmount              string   `json:"emdAmount" validate:"required"`
	EMDPayableTo           string   `json:"emdPayableTo,omitempty"`
	EMDPayableAt           string   `json:"emdPayableAt,omitempty"`
	TenderValue            string   `json:"tenderValue,omitempty"`
	TenderFee              string   `json:"tenderFee,omitempty"`
	FeePayableTo           string   `json:"feePayableTo,omitempty"`
	FeePayableAt           string   `json:"feePayableAt,omitempty"`
	PeriodOfWorkDays       string   `json:"periodOfWorkDays" validate:"required"`
	BidValidityDays        string   `json:"bidValidityDays,omitempty"`
	WorkLocation           string   `json:"workLocation,omitempty"`
	Pincode                string   `json:"pincode,omitempty"`
	BidOpeningPlace        string   `json:"bidOpeningPlace,omitempty"`
	PaymentInstruments     []string `json:"paymentInstruments,omitempty"`
}

// PromptJSON serializes the tender for the model instruction: indented,
// portal field names preserved, empty optional fields dropped.
func (t *TenderInput) PromptJSON() (string, error) {
	buf, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
