package ondc

import (
	"time"

	"ondc-seller-bridge/internal/pkg/clock"
	"ondc-seller-bridge/internal/pkg/config"

	"github.com/google/uuid"
)

// Codec builds protocol-conformant context blocks for every response and
// never fails: missing inbound ids are echoed as empty strings rather than
// rejected, so envelope construction cannot abort a handler.
type Codec struct {
	cfg   config.ProtocolConfig
	clock clock.Clock
}

func NewCodec(cfg config.ProtocolConfig, clk clock.Clock) *Codec {
	return &Codec{cfg: cfg, clock: clk}
}

// ResponseContext echoes the inbound transaction and message ids verbatim
// and stamps the deployment-fixed fields plus a fresh timestamp.
func (c *Codec) ResponseContext(in Context, action string) Context {
	out := c.base(action)
	out.TransactionID = in.TransactionID
	out.MessageID = in.MessageID
	out.BppID = c.cfg.BppID
	out.BppURI = c.cfg.BppURI
	return out
}

// SearchContext is used for search responses, which originate a new exchange:
// the message id is always freshly minted, and the transaction id is kept
// only when the caller supplied one.
func (c *Codec) SearchContext(in Context) Context {
	out := c.base(ActionSearch)
	out.TransactionID = in.TransactionID
	if out.TransactionID == "" {
		out.TransactionID = uuid.NewString()
	}
	out.MessageID = uuid.NewString()
	return out
}

func (c *Codec) base(action string) Context {
	return Context{
		Domain:      c.cfg.Domain,
		Country:     c.cfg.Country,
		City:        c.cfg.City,
		Action:      action,
		CoreVersion: c.cfg.CoreVersion,
		BapID:       c.cfg.BapID,
		BapURI:      c.cfg.BapURI,
		Timestamp:   c.clock.Now().UTC().Format(time.RFC3339),
		TTL:         c.cfg.TTL,
	}
}
