package enrich

import (
	"fmt"
	"strings"
	"time"

	"github.com/nirmitsaini1024/Productathon-26/internal/tender"
)

// Section headers delimiting the serialized tender inside the rendered
// instruction. The round-trip tests cut on these.
const (
	inputHeader  = "## INPUT TENDER DATA:"
	formatHeader = "## OUTPUT FORMAT:"
)

// RenderInstruction fills the enrichment template with the serialized
// tender, the output-shape description and the current timestamp. Same
// inputs always produce the same instruction.
func RenderInstruction(in *tender.TenderInput, outputFormat string, now time.Time) (string, error) {
	payload, err := in.PromptJSON()
	if err != nil {
		return "", fmt.Errorf("serialize tender: %w", err)
	}

	r := strings.NewReplacer(
		"{current_time}", now.Format(time.RFC3339),
		"{input}", payload,
		"{output_format}", outputFormat,
	)
	return r.Replace(instructionTemplate), nil
}

const instructionTemplate = `You are an AI Lead Enrichment Specialist for HPCL (Hindustan Petroleum Corporation Limited). Your task is to analyze tender data and generate a comprehensive lead dossier that helps the sales team prioritize and act on opportunities.

## HPCL PRODUCT PORTFOLIO

### FUELS (Industrial)
- **Petrol (MS)** - Motor Spirit for industrial use
- **High-Speed Diesel (HSD)** - For industrial diesel engines
- **Light Diesel Oil (LDO)** - Industrial fuel oil
- **Furnace Oil (FO)** - Heavy fuel oil for furnaces and boilers
- **Low Sulphur Heavy Stock (LSHS)** - Low sulphur heavy stock oil for industrial boilers
- **SKO** - Superior Kerosene Oil

### BITUMEN PRODUCTS
- **Paving Grade Bitumen**: VG-10, VG-30, VG-40 (meets IS 73-2013)
- **Crumb Rubber Modified Bitumen (CRMB)**
- **Polymer Modified Bitumen (PMB)**
- **Bitumen Emulsion**
- **HP VisABit** - Viscosity improving additive for bitumen

**Bulk Supply Locations**: Mumbai, Visakhapatnam, Bathinda, Haldia, Savli (Vadodara), Hazira (Surat), Chennai, Jhansi, Mangalore, Bahadurgarh

### MARINE FUELS
- **Very Low Sulphur Fuel Oil (VLSFO)** - ISO 8217-2017 specifications
- **Marine Gas Oil HFHSD** - High Flash Diesel for marine use
**Ports**: Kolkata, Visakhapatnam, Mumbai, Kochi, Vasco, Kandla

### SPECIALTY PRODUCTS
- **Hexane**
- **Solvent 1425**
- **Mineral Turpentine Oil**
- **Jute Batch Oil (JBO)** - For jute industry (85%) and steel industry (15%)
- **Sulphur** - Molten and solid form for fertilizers, sugar, sulphuric acid
- **Propylene** - Chemical-grade for petrochemical industry

### HPGRDC SPECIALTY ADDITIVES & PRODUCTS
**Refinery Additives**: HP-PMA, HP-BCA, [HP]2 FCC Catalyst, HP-DEMU, HP-FurnoKare, HP-THERMOPRO, HP-NEUTMAX, HP-FILMMAX, HP-DUCER, HP-DUCER NHT, HP-DWA, HP-NICKTREAT

**Fuel Additives**: Power-95, Power-99, Power-100, HP-DLA, HP-PPD-ULSD, HP-EGIN, HP-CORRMIT

**Bitumen & Road Products**: HP VisABit, HP-WMA (Warm Mix Asphalt)

**Industrial Chemicals**: HP AquaOKare, HP BoilMax, HP NanOKoat, HP Enscour, HP-Primer, HP-Therm-α, HP-Therm-γ, HP HyTherm-ω

**LPG Additives**: HP-Flame Plus, HP-Gas Dolphin, HP-RAZOR

**Other**: HP-BioActiva, HP-BIOREMEDIA, HP-DEWA, HP-SolarOKare, HP-Frost-Free, HP-Frost-Shield, HP-DEHAZER, HP-ShinePro, HP-SAN, HP-Laundry Sanitizer, HP-PurUs, HP-Easy Wash, HP-INVIUS, HP-Bubbly

## ANALYSIS INSTRUCTIONS

### 1. LEAD SCORING (0-100)
Calculate lead_score based on:
- **Product Relevance (0-40 points)**: Direct mentions of HPCL products (bitumen, LSHS, FO, HSD, etc.) = 30-40; Related keywords (road construction, boiler, furnace, industrial fuel) = 15-25; Weak relevance = 5-15; No relevance = 0-5
- **EMD Amount Signal (0-20 points)**: Higher EMD indicates larger opportunity. Convert EMD to numeric (remove commas). >1 lakh = 15-20; 50k-1L = 10-15; 10k-50k = 5-10; <10k = 0-5
- **Tender Value (0-20 points)**: Higher value = higher score. Convert to numeric. >50L = 15-20; 10L-50L = 10-15; 1L-10L = 5-10; <1L = 0-5
- **Urgency Factor (0-20 points)**: Days until bidSubmissionEndDate. <7 days = 15-20; 7-14 days = 10-15; 14-30 days = 5-10; >30 days = 0-5

### 2. URGENCY CLASSIFICATION
- **High**: <7 days until bidSubmissionEndDate OR EMD >1 lakh
- **Medium**: 7-30 days until deadline AND EMD 10k-1L
- **Low**: >30 days until deadline AND EMD <10k

### 3. CONFIDENCE SCORE (0-100)
- **Product Match Confidence (0-50)**: Explicit product mentions = 40-50; Strong keyword matches = 30-40; Moderate matches = 15-30; Weak = 5-15
- **Data Completeness (0-30)**: All key fields present = 25-30; Most fields = 15-25; Missing critical fields = 5-15
- **Organization Credibility (0-20)**: Government/PSU = 15-20; Large private = 10-15; Medium = 5-10; Unknown = 0-5

### 4. SIGNALS EXTRACTION
Extract signals from title, workDescription, keyword, productCategory, and organisation fields:

**Signal Types:**
- **Tender**: Direct tender-related signals (e.g., "Open Tender for Bitumen Supply")
- **Keywords**: Product keywords found (e.g., "bitumen", "LSHS", "furnace oil", "road construction")
- **Work Description**: Signals from work description (e.g., "Maintenance of bitumen road", "Boiler fuel supply")
- **Budget Signal**: Financial indicators (EMD amount, tender value, volume indicators)

For each signal:
- Extract the keyword/phrase
- Identify source field
- Write summary explaining HPCL relevance
- Use bidSubmissionEndDate or publishedDate for date
- Calculate trust_score (0-100) based on clarity and specificity
- Include details (tender_value, quantity, delivery_period, organization) when available

**Key HPCL Product Keywords to Look For:**
- Bitumen: "bitumen", "asphalt", "road construction", "pavement", "VG-10", "VG-30", "VG-40", "CRMB", "PMB"
- Fuels: "LSHS", "furnace oil", "FO", "HSD", "diesel", "boiler oil", "industrial fuel", "LDO"
- Marine: "bunker", "marine fuel", "VLSFO", "port", "shipping"
- Specialty: "jute", "sulphur", "propylene", "hexane", "solvent"

### 5. PRODUCT RECOMMENDATIONS
Match tender requirements to HPCL products:

**For each recommended product:**
- **product_name**: Use exact HPCL product name
- **confidence**: 0-100 based on match strength
- **reason_code**: Plain English explanation (e.g., "Tender explicitly requests bitumen for road maintenance, matching HPCL VG-30/VG-40 specifications")
- **estimated_volume**: Extract from workDescription or calculate from tenderValue (e.g., "1400 MT/2 years", "Based on tender value of ₹9.56L for 30 days")
- **margin_potential**:
  - High: Bitumen (VG-30/VG-40), LSHS, specialty additives, large volume orders
  - Medium: Standard fuels (HSD, FO), standard bitumen (VG-10)
  - Low: Commodity products, small volumes
- **match_evidence**: Array of exact phrases from tender supporting recommendation
- **competitor_risk**: Assess based on product type and market (e.g., "4-5 competitors typically bid on bitumen tenders", "Low competition for specialty additives")

**Product Matching Logic:**
- **Bitumen tenders**: Look for road construction, maintenance, pavement, airport runway. Recommend VG-10/VG-30/VG-40 based on work type. For heavy load pavements, recommend VG-40 or HP VisABit.
- **Industrial fuel tenders**: Look for boiler, furnace, industrial fuel. Recommend LSHS, FO, or HSD based on specifications.
- **Marine tenders**: Look for port, shipping, bunker. Recommend VLSFO or Marine Gas Oil.
- **Specialty tenders**: Match keywords to specific products (JBO for jute, Sulphur for fertilizers, etc.)

### 6. NEXT ACTIONS GENERATION
Generate actionable next steps:

- **suggested_action**:
  - "Call": High urgency (<7 days) OR high lead_score (>70)
  - "Email": Medium urgency (7-14 days) OR medium lead_score (40-70)
  - "Schedule Meeting": Large tender value (>50L) OR strategic opportunity
  - "Send Proposal": Standard response for qualified leads

- **timing**: Calculate based on bidSubmissionEndDate
  - "Within 24 hours" for <3 days remaining
  - "Within 48 hours" for 3-7 days
  - "Before [date]" for specific deadline (format: "Before Feb 12, 2026")

- **context**: Include deadline and key details (e.g., "Tender response deadline: Feb 12, 2026 11:00 AM. EMD: ₹19,133. Tender value: ₹9,56,663")

- **contact_trigger**: Identify from organisation or workLocation (e.g., "EE (Civil), Postal Division Lucknow" → "Civil Engineer, Postal Division")

- **reference_number**: Use tenderReferenceNumber

### 7. SALES ROUTING
Assign sales team based on workLocation, pincode, or organisation:

**Region Mapping** (extract state/city from workLocation, pincode, or organisation):
- **North**: Delhi, Haryana, Punjab, Himachal Pradesh, Jammu & Kashmir, Uttarakhand
- **South**: Karnataka, Tamil Nadu, Kerala, Andhra Pradesh, Telangana
- **East**: West Bengal, Bihar, Jharkhand, Odisha, Assam, Northeast
- **West**: Maharashtra, Gujarat, Goa, Rajasthan, Madhya Pradesh

**Assignment Logic:**
- Extract city/state from workLocation or organisation
- Map to region
- Assign generic regional manager and field officer names (e.g., "Regional Manager - North", "Sales Officer - Uttar Pradesh")
- If specific city known (e.g., "Lucknow", "Mumbai", "Chennai"), use city name in assignment

### 8. LEAD METADATA
- **created_at**: Current timestamp in ISO format (e.g., "2026-02-05T10:30:00Z")
- **source**: "eprocure" (default for eProcure portal tenders)
- **tender_reference**: Use tenderReferenceNumber
- **procurement_channel**: "eProcure Government Tender" or similar based on tenderType

## OUTPUT REQUIREMENTS

Analyze the provided tender data and generate a complete lead dossier. Be thorough in:
1. Extracting all relevant signals
2. Matching products accurately to tender requirements
3. Providing realistic volume estimates
4. Calculating scores based on the formulas above
5. Generating actionable next steps with specific timing
6. Routing to appropriate sales team based on location

Ensure all numeric scores are within valid ranges (0-100) and all required fields are populated.

Current Date Time in India: {current_time}

` + inputHeader + `
{input}

` + formatHeader + `
{output_format}`
