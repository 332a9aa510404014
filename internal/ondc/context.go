package ondc

// Context is the protocol envelope's context block. Identifying ids are
// pass-through from the inbound request; timestamp and ttl are stamped per
// response. bpp fields are omitted on buyer-originated shapes that never
// carried them.
type Context struct {
	Domain        string `json:"domain"`
	Country       string `json:"country"`
	City          string `json:"city"`
	Action        string `json:"action"`
	CoreVersion   string `json:"core_version"`
	BapID         string `json:"bap_id"`
	BapURI        string `json:"bap_uri"`
	BppID         string `json:"bpp_id,omitempty"`
	BppURI        string `json:"bpp_uri,omitempty"`
	TransactionID string `json:"transaction_id"`
	MessageID     string `json:"message_id"`
	Timestamp     string `json:"timestamp,omitempty"`
	TTL           string `json:"ttl,omitempty"`
}

const (
	ActionSearch  = "search"
	ActionSelect  = "select"
	ActionInit    = "init"
	ActionConfirm = "confirm"
	ActionStatus  = "status"
	ActionCancel  = "cancel"
	ActionRating  = "rating"
	ActionSupport = "support"
)
