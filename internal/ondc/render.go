package ondc

import (
	"ondc-seller-bridge/internal/domain/catalog"
	"ondc-seller-bridge/internal/pkg/config"
	"ondc-seller-bridge/internal/pkg/money"
)

// Rendering helpers from domain types onto the wire shapes. Fixed blocks
// (provider, fulfillment, billing fallback) reproduce the values the seller
// app is registered with.

func CatalogFromItems(items []catalog.Item, cfg config.ProtocolConfig) *Catalog {
	rendered := make([]Item, len(items))
	for i, it := range items {
		rendered[i] = CatalogItem(it, cfg)
	}
	return &Catalog{
		BppDescriptor: Descriptor{Name: cfg.BppName},
		BppProviders: []Provider{{
			ID:         cfg.ProviderID,
			Descriptor: Descriptor{Name: cfg.ProviderName, ShortDesc: "Digital Commerce Seller"},
			Items:      rendered,
			Fulfillments: []Fulfillment{{
				ID:           cfg.ProviderID,
				Type:         "Delivery",
				ProviderName: cfg.ProviderName,
				Rating:       "4.5",
			}},
		}},
	}
}

func CatalogItem(it catalog.Item, cfg config.ProtocolConfig) Item {
	category := it.Category
	if category == "" {
		category = cfg.DefaultCategory
	}
	return Item{
		ID: it.ID,
		Descriptor: &Descriptor{
			Name:      it.Name,
			ShortDesc: it.Description,
			LongDesc:  it.Description,
			Images:    it.Images,
		},
		Price:         &Price{Currency: cfg.Currency, Value: it.Price.String()},
		CategoryID:    category,
		FulfillmentID: cfg.ProviderID,
		LocationID:    cfg.ProviderID,
	}
}

func ProviderBlock(cfg config.ProtocolConfig) *Provider {
	return &Provider{
		ID:         cfg.ProviderID,
		Descriptor: Descriptor{Name: cfg.ProviderName},
	}
}

// BillingOrDefault echoes the caller's billing block when present, otherwise
// the deployment's fixed billing fallback.
func BillingOrDefault(b *Billing) *Billing {
	if b != nil && (b.Name != "" || b.Address != nil) {
		return b
	}
	return &Billing{
		Name: "Customer",
		Address: &Address{
			Locality: "Bangalore",
			City:     "Bangalore",
			State:    "Karnataka",
		},
	}
}

func DeliveryFulfillment() *Fulfillment {
	return &Fulfillment{
		Type:     "Delivery",
		Tracking: false,
		End: &FulfillmentEnd{
			Location: &Location{
				GPS: "12.9716,77.5946",
				Address: &Address{
					Locality: "Bangalore",
					City:     "Bangalore",
					State:    "Karnataka",
				},
			},
		},
	}
}

// SettlementPayment renders the buyer-app settlement block with the given
// total. The settlement fields are echoed protocol furniture, not settlement
// logic.
func SettlementPayment(total money.Amount, cfg config.ProtocolConfig, timestamp string) *Payment {
	return &Payment{
		FinderFeeType:     "percent",
		FinderFee:         "3",
		SettlementBasis:   "delivery",
		SettlementWindow:  "P1D",
		WithholdingAmount: "0.00",
		SettlementDetails: []SettlementDetail{{
			Counterparty:    "buyer-app",
			Phase:           "sale-amount",
			BeneficiaryName: cfg.ProviderName,
			Status:          "PAID",
			Reference:       "TXN123456",
			Timestamp:       timestamp,
			Amount:          Price{Currency: cfg.Currency, Value: total.String()},
		}},
	}
}
