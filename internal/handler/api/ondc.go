package api

import (
	"net/http"

	"ondc-seller-bridge/internal/domain/order"
	"ondc-seller-bridge/internal/handler/httperr"
	"ondc-seller-bridge/internal/ondc"
	"ondc-seller-bridge/internal/pkg/config"
	"ondc-seller-bridge/internal/pkg/errs"
	"ondc-seller-bridge/internal/usecase/commands"
	"ondc-seller-bridge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ONDCHandler hosts one endpoint per network action. Every response,
// success or failure, is a complete protocol envelope.
type ONDCHandler struct {
	codec    *ondc.Codec
	cfg      config.ProtocolConfig
	orders   commands.OrderCommands
	ratings  commands.RatingCommands
	catalogQ queries.CatalogQueries
	orderQ   queries.OrderQueries
}

func NewONDCHandler(
	codec *ondc.Codec,
	cfg config.ProtocolConfig,
	orders commands.OrderCommands,
	ratings commands.RatingCommands,
	catalogQ queries.CatalogQueries,
	orderQ queries.OrderQueries,
) *ONDCHandler {
	return &ONDCHandler{
		codec:    codec,
		cfg:      cfg,
		orders:   orders,
		ratings:  ratings,
		catalogQ: catalogQ,
		orderQ:   orderQ,
	}
}

func (h *ONDCHandler) Search(c *gin.Context) {
	req, ok := h.bind(c, ondc.ActionSearch)
	if !ok {
		return
	}
	respCtx := h.codec.SearchContext(req.Context)

	items, err := h.catalogQ.Search(c.Request.Context(), searchIntent(req.Message.Intent))
	if err != nil {
		h.abortDomainError(c, respCtx, err)
		return
	}

	c.JSON(http.StatusOK, ondc.Response{
		Context: respCtx,
		Message: &ondc.ResponseMessage{Catalog: ondc.CatalogFromItems(items, h.cfg)},
	})
}

func (h *ONDCHandler) Select(c *gin.Context) {
	req, ok := h.bind(c, ondc.ActionSelect)
	if !ok {
		return
	}
	respCtx := h.codec.ResponseContext(req.Context, ondc.ActionSelect)

	if req.Message.Order == nil {
		h.abortValidation(c, respCtx, "message.order is required")
		return
	}

	quote, err := h.orders.Quote(c.Request.Context(), requestedItems(req.Message.Order.Items))
	if err != nil {
		h.abortDomainError(c, respCtx, err)
		return
	}

	items := make([]ondc.Item, len(quote.Lines))
	for i, l := range quote.Lines {
		items[i] = ondc.Item{
			ID:       l.Item.ID,
			Quantity: l.Quantity,
			Price:    &ondc.Price{Currency: quote.Currency, Value: l.LineTotal().String()},
		}
	}

	c.JSON(http.StatusOK, ondc.Response{
		Context: respCtx,
		Message: &ondc.ResponseMessage{Order: &ondc.OrderPayload{
			ID:            quote.ExternalOrderID,
			State:         "Created",
			Provider:      ondc.ProviderBlock(h.cfg),
			Items:         items,
			RejectedItems: rejectedItems(quote.Rejected),
			Billing:       ondc.BillingOrDefault(req.Message.Order.Billing),
			Fulfillment:   ondc.DeliveryFulfillment(),
			Payment:       ondc.SettlementPayment(quote.Total, h.cfg, respCtx.Timestamp),
		}},
	})
}

func (h *ONDCHandler) Init(c *gin.Context) {
	req, ok := h.bind(c, ondc.ActionInit)
	if !ok {
		return
	}
	respCtx := h.codec.ResponseContext(req.Context, ondc.ActionInit)

	if req.Message.Order == nil {
		h.abortValidation(c, respCtx, "message.order is required")
		return
	}

	customerID := req.Context.BapID
	if customerID == "" {
		customerID = h.cfg.BapID
	}

	result, err := h.orders.Init(c.Request.Context(), commands.InitRequest{
		MessageID:       req.Context.MessageID,
		ExternalOrderID: req.Message.Order.ID,
		CustomerID:      customerID,
		Items:           requestedItems(req.Message.Order.Items),
	})
	if err != nil {
		h.abortDomainError(c, respCtx, err)
		return
	}

	fulfillment := req.Message.Order.Fulfillment
	if fulfillment == nil {
		fulfillment = ondc.DeliveryFulfillment()
	}

	c.JSON(http.StatusOK, ondc.Response{
		Context: respCtx,
		Message: &ondc.ResponseMessage{Order: &ondc.OrderPayload{
			ID:            result.Order.ExternalID,
			State:         string(result.Order.Status),
			Provider:      ondc.ProviderBlock(h.cfg),
			Items:         orderItems(result.Items, result.Order.Currency),
			RejectedItems: rejectedItems(result.Rejected),
			Billing:       ondc.BillingOrDefault(req.Message.Order.Billing),
			Fulfillment:   fulfillment,
			Payment:       ondc.SettlementPayment(result.Order.TotalAmount, h.cfg, respCtx.Timestamp),
		}},
	})
}

func (h *ONDCHandler) Confirm(c *gin.Context) {
	req, ok := h.bind(c, ondc.ActionConfirm)
	if !ok {
		return
	}
	respCtx := h.codec.ResponseContext(req.Context, ondc.ActionConfirm)

	if req.Message.Order == nil || req.Message.Order.ID == "" {
		h.abortValidation(c, respCtx, "message.order.id is required")
		return
	}

	result, err := h.orders.Confirm(c.Request.Context(), req.Message.Order.ID)
	if err != nil {
		h.abortDomainError(c, respCtx, err)
		return
	}

	c.JSON(http.StatusOK, ondc.Response{
		Context: respCtx,
		Message: &ondc.ResponseMessage{Order: &ondc.OrderPayload{
			ID:          result.Order.ExternalID,
			State:       string(result.Order.Status),
			Provider:    ondc.ProviderBlock(h.cfg),
			Items:       orderItems(result.Items, result.Order.Currency),
			Billing:     ondc.BillingOrDefault(req.Message.Order.Billing),
			Fulfillment: ondc.DeliveryFulfillment(),
			Payment:     ondc.SettlementPayment(result.Order.TotalAmount, h.cfg, respCtx.Timestamp),
		}},
	})
}

func (h *ONDCHandler) Status(c *gin.Context) {
	req, ok := h.bind(c, ondc.ActionStatus)
	if !ok {
		return
	}
	respCtx := h.codec.ResponseContext(req.Context, ondc.ActionStatus)

	view, err := h.orderQ.GetByExternalID(c.Request.Context(), req.Message.OrderID)
	if err != nil {
		h.abortDomainError(c, respCtx, err)
		return
	}

	c.JSON(http.StatusOK, ondc.Response{
		Context: respCtx,
		Message: &ondc.ResponseMessage{Order: &ondc.OrderPayload{
			ID:          view.Order.ExternalID,
			State:       string(view.Order.Status),
			Provider:    ondc.ProviderBlock(h.cfg),
			Items:       orderItems(view.Items, view.Order.Currency),
			Billing:     ondc.BillingOrDefault(nil),
			Fulfillment: ondc.DeliveryFulfillment(),
		}},
	})
}

func (h *ONDCHandler) Cancel(c *gin.Context) {
	req, ok := h.bind(c, ondc.ActionCancel)
	if !ok {
		return
	}
	respCtx := h.codec.ResponseContext(req.Context, ondc.ActionCancel)

	result, err := h.orders.Cancel(c.Request.Context(), req.Message.OrderID)
	if err != nil {
		h.abortDomainError(c, respCtx, err)
		return
	}

	c.JSON(http.StatusOK, ondc.Response{
		Context: respCtx,
		Message: &ondc.ResponseMessage{Order: &ondc.OrderPayload{
			ID:                   result.Order.ExternalID,
			State:                string(result.Order.Status),
			CancellationReasonID: req.Message.CancellationReasonID,
		}},
	})
}

func (h *ONDCHandler) Rating(c *gin.Context) {
	req, ok := h.bind(c, ondc.ActionRating)
	if !ok {
		return
	}
	respCtx := h.codec.ResponseContext(req.Context, ondc.ActionRating)

	if req.Message.Rating == nil {
		h.abortValidation(c, respCtx, "message.rating is required")
		return
	}

	r, err := h.ratings.Create(c.Request.Context(), commands.CreateRatingRequest{
		OrderID: req.Message.Rating.OrderID,
		Value:   req.Message.Rating.Value,
		Comment: req.Message.Rating.Comment,
	})
	if err != nil {
		h.abortDomainError(c, respCtx, err)
		return
	}

	c.JSON(http.StatusOK, ondc.Response{
		Context: respCtx,
		Message: &ondc.ResponseMessage{Rating: &ondc.RatingPayload{
			OrderID: r.OrderID,
			Value:   r.Value.Int(),
			Comment: r.Comment.String(),
		}},
	})
}

func (h *ONDCHandler) Support(c *gin.Context) {
	req, ok := h.bind(c, ondc.ActionSupport)
	if !ok {
		return
	}
	respCtx := h.codec.ResponseContext(req.Context, ondc.ActionSupport)

	refID := ""
	if req.Message.Support != nil {
		refID = req.Message.Support.RefID
	}

	c.JSON(http.StatusOK, ondc.Response{
		Context: respCtx,
		Message: &ondc.ResponseMessage{Support: &ondc.SupportAck{
			RefID:  refID,
			Status: "Open",
			Resolution: ondc.SupportResolution{
				ShortDesc:       "Your support request has been received",
				LongDesc:        "We will get back to you within 24 hours",
				ActionTriggered: "email_sent",
			},
		}},
	})
}

func (h *ONDCHandler) bind(c *gin.Context, action string) (*ondc.Request, bool) {
	var req ondc.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respCtx := h.codec.ResponseContext(ondc.Context{}, action)
		httperr.AbortWithProtocolError(c, http.StatusBadRequest, respCtx, err,
			ondc.CodeValidation, "Malformed request envelope")
		return nil, false
	}
	return &req, true
}

func (h *ONDCHandler) abortValidation(c *gin.Context, respCtx ondc.Context, msg string) {
	httperr.AbortWithProtocolError(c, http.StatusBadRequest, respCtx,
		errs.Wrap(errs.ErrValidation, msg), ondc.CodeValidation, msg)
}

func (h *ONDCHandler) abortDomainError(c *gin.Context, respCtx ondc.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrOrderNotFound):
		httperr.AbortWithProtocolError(c, http.StatusNotFound, respCtx, err,
			ondc.CodeOrderNotFound, "Order not found")
	case errs.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithProtocolError(c, http.StatusNotFound, respCtx, err,
			ondc.CodeProductNotFound, "Product not found")
	case errs.Is(err, errs.ErrInsufficientStock):
		httperr.AbortWithProtocolError(c, http.StatusConflict, respCtx, err,
			ondc.CodeInsufficientStock, "Insufficient stock")
	case errs.Is(err, errs.ErrEmptyOrder):
		httperr.AbortWithProtocolError(c, http.StatusBadRequest, respCtx, err,
			ondc.CodeValidation, "No item in the order could be fulfilled")
	case errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithProtocolError(c, http.StatusBadRequest, respCtx, err,
			ondc.CodeValidation, "Order state does not allow this action")
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithProtocolError(c, http.StatusBadRequest, respCtx, err,
			ondc.CodeValidation, "Invalid request")
	default:
		httperr.AbortWithProtocolError(c, http.StatusInternalServerError, respCtx, err,
			ondc.CodeInternal, "Internal server error")
	}
}

func searchIntent(intent *ondc.Intent) queries.SearchIntent {
	var out queries.SearchIntent
	if intent == nil {
		return out
	}
	if intent.Item != nil {
		if intent.Item.Descriptor != nil {
			out.NameFragment = intent.Item.Descriptor.Name
		}
		out.Category = intent.Item.CategoryID
	}
	if intent.Fulfillment != nil && intent.Fulfillment.End != nil &&
		intent.Fulfillment.End.Location != nil && intent.Fulfillment.End.Location.Address != nil {
		out.Locality = intent.Fulfillment.End.Location.Address.Locality
	}
	return out
}

func requestedItems(items []ondc.Item) []commands.RequestedItem {
	out := make([]commands.RequestedItem, len(items))
	for i, it := range items {
		out[i] = commands.RequestedItem{ProductID: it.ID, Quantity: it.Quantity}
	}
	return out
}

func rejectedItems(rejected []commands.RejectedItem) []ondc.RejectedItem {
	if len(rejected) == 0 {
		return nil
	}
	out := make([]ondc.RejectedItem, len(rejected))
	for i, r := range rejected {
		out[i] = ondc.RejectedItem{ID: r.ProductID, Reason: string(r.Reason)}
	}
	return out
}

func orderItems(items []order.Item, currency string) []ondc.Item {
	out := make([]ondc.Item, len(items))
	for i, it := range items {
		out[i] = ondc.Item{
			ID:       it.ProductID,
			Quantity: it.Quantity,
			Price:    &ondc.Price{Currency: currency, Value: it.LineTotal().String()},
		}
	}
	return out
}
