package lpstore

// Category classifies a limited partner by investor type.
type Category string

const (
	CategoryGPInvestor    Category = "GP Investor"
	CategoryFundInvestor  Category = "Fund Investor"
	CategoryHNWIndividual Category = "HNW Individual"
	CategoryFamilyOffice  Category = "Family Office"
)

// Status tracks where an LP sits in the outreach funnel.
type Status string

const (
	StatusProspect     Status = "Prospect"
	StatusContacted    Status = "Contacted"
	StatusEngaged      Status = "Engaged"
	StatusInDiscussion Status = "In Discussion"
)

// Interaction kinds accepted by LogInteraction. Each kind advances the
// record's status and next action.
const (
	InteractionInitialOutreach = "Initial Outreach"
	InteractionFollowUp        = "Follow-up"
	InteractionMeeting         = "Meeting"
)

// LPRecord is the canonical shape every discovered investor is projected
// into. Loose search-result shapes never leak past normalization.
type LPRecord struct {
	Name          string
	Firm          string
	Email         string
	Interests     string
	Status        Status
	LastContact   string
	NextAction    string
	Notes         string
	Category      Category
	EBITDARange   string
	RevenueRange  string
	Preferences   string
	Industries    string
	DealHistory   string
	DiscoveryDate string
	Confidence    int
}

// Columns is the persisted schema, in storage order. Loading tolerates files
// written before a column existed; missing columns read as empty.
var Columns = []string{
	"LP_Name", "Firm", "Email", "Interests", "Status",
	"Last_Contact", "Next_Action", "Notes",
	"LP_Category", "EBITDA_Range", "Revenue_Range",
	"Investment_Preferences", "Industries", "Deal_History",
	"Discovery_Date", "Confidence_Score",
}
