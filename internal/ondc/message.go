package ondc

// Request is the inbound envelope shared by all eight actions. Unknown
// protocol fields are ignored rather than rejected; network callers send far
// more than the bridge consumes.
type Request struct {
	Context Context        `json:"context"`
	Message RequestMessage `json:"message"`
}

type RequestMessage struct {
	Intent               *Intent         `json:"intent,omitempty"`
	Order                *OrderPayload   `json:"order,omitempty"`
	OrderID              string          `json:"order_id,omitempty"`
	CancellationReasonID string          `json:"cancellation_reason_id,omitempty"`
	Rating               *RatingPayload  `json:"rating,omitempty"`
	Support              *SupportPayload `json:"support,omitempty"`
}

// Response mirrors the request envelope; exactly one of Message or Error is
// set.
type Response struct {
	Context Context          `json:"context"`
	Message *ResponseMessage `json:"message,omitempty"`
	Error   *Error           `json:"error,omitempty"`
}

type ResponseMessage struct {
	Catalog *Catalog       `json:"catalog,omitempty"`
	Order   *OrderPayload  `json:"order,omitempty"`
	Rating  *RatingPayload `json:"rating,omitempty"`
	Support *SupportAck    `json:"support,omitempty"`
}

type Error struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Protocol error codes used by the bridge.
const (
	CodeValidation        = "30000"
	CodeProductNotFound   = "30004"
	CodeInsufficientStock = "30009"
	CodeInternal          = "31001"
	CodeOrderNotFound     = "31002"
)

type Intent struct {
	Item        *IntentItem        `json:"item,omitempty"`
	Fulfillment *IntentFulfillment `json:"fulfillment,omitempty"`
}

type IntentItem struct {
	Descriptor *Descriptor `json:"descriptor,omitempty"`
	CategoryID string      `json:"category_id,omitempty"`
}

type IntentFulfillment struct {
	End *FulfillmentEnd `json:"end,omitempty"`
}

type Descriptor struct {
	Name      string   `json:"name,omitempty"`
	ShortDesc string   `json:"short_desc,omitempty"`
	LongDesc  string   `json:"long_desc,omitempty"`
	Images    []string `json:"images,omitempty"`
}

type Price struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

type Catalog struct {
	BppDescriptor Descriptor `json:"bpp/descriptor"`
	BppProviders  []Provider `json:"bpp/providers"`
}

type Provider struct {
	ID           string        `json:"id"`
	Descriptor   Descriptor    `json:"descriptor"`
	Items        []Item        `json:"items,omitempty"`
	Fulfillments []Fulfillment `json:"fulfillments,omitempty"`
}

type Item struct {
	ID            string      `json:"id"`
	Descriptor    *Descriptor `json:"descriptor,omitempty"`
	Price         *Price      `json:"price,omitempty"`
	CategoryID    string      `json:"category_id,omitempty"`
	FulfillmentID string      `json:"fulfillment_id,omitempty"`
	LocationID    string      `json:"location_id,omitempty"`
	Quantity      int         `json:"quantity,omitempty"`
}

// RejectedItem tags an item the bridge could not fulfil, so callers see why
// it is absent from the quote or order instead of inferring it.
type RejectedItem struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type OrderPayload struct {
	ID                   string         `json:"id,omitempty"`
	State                string         `json:"state,omitempty"`
	Provider             *Provider      `json:"provider,omitempty"`
	Items                []Item         `json:"items,omitempty"`
	RejectedItems        []RejectedItem `json:"rejected_items,omitempty"`
	Billing              *Billing       `json:"billing,omitempty"`
	Fulfillment          *Fulfillment   `json:"fulfillment,omitempty"`
	Payment              *Payment       `json:"payment,omitempty"`
	CancellationReasonID string         `json:"cancellation_reason_id,omitempty"`
}

type Billing struct {
	Name    string   `json:"name,omitempty"`
	Address *Address `json:"address,omitempty"`
}

type Address struct {
	Locality string `json:"locality,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
}

type Fulfillment struct {
	ID           string          `json:"id,omitempty"`
	Type         string          `json:"type,omitempty"`
	Tracking     bool            `json:"tracking"`
	ProviderName string          `json:"provider_name,omitempty"`
	Rating       string          `json:"rating,omitempty"`
	End          *FulfillmentEnd `json:"end,omitempty"`
}

type FulfillmentEnd struct {
	Location *Location `json:"location,omitempty"`
}

type Location struct {
	GPS     string   `json:"gps,omitempty"`
	Address *Address `json:"address,omitempty"`
}

type Payment struct {
	FinderFeeType     string             `json:"@ondc/org/buyer_app_finder_fee_type,omitempty"`
	FinderFee         string             `json:"@ondc/org/buyer_app_finder_fee,omitempty"`
	SettlementBasis   string             `json:"@ondc/org/settlement_basis,omitempty"`
	SettlementWindow  string             `json:"@ondc/org/settlement_window,omitempty"`
	WithholdingAmount string             `json:"@ondc/org/withholding_amount,omitempty"`
	SettlementDetails []SettlementDetail `json:"@ondc/org/settlement_details,omitempty"`
}

type SettlementDetail struct {
	Counterparty    string `json:"settlement_counterparty,omitempty"`
	Phase           string `json:"settlement_phase,omitempty"`
	BeneficiaryName string `json:"beneficiary_name,omitempty"`
	Status          string `json:"settlement_status,omitempty"`
	Reference       string `json:"settlement_reference,omitempty"`
	Timestamp       string `json:"settlement_timestamp,omitempty"`
	Amount          Price  `json:"amount"`
}

type RatingPayload struct {
	OrderID string `json:"order_id"`
	Value   int    `json:"rating_value"`
	Comment string `json:"rating_comment,omitempty"`
}

type SupportPayload struct {
	RefID string `json:"ref_id,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type SupportAck struct {
	RefID      string            `json:"ref_id,omitempty"`
	Status     string            `json:"status"`
	Resolution SupportResolution `json:"resolution"`
}

type SupportResolution struct {
	ShortDesc       string `json:"short_desc"`
	LongDesc        string `json:"long_desc"`
	ActionTriggered string `json:"action_triggered"`
}
