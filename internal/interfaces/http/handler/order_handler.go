package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "order_pricing/internal/application/order"
	"order_pricing/internal/domain/client"
	"order_pricing/internal/domain/order"
)

type OrderHandler struct {
	svc *app.Service
}

func NewOrderHandler(svc *app.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type itemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type clientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Tier  string `json:"tier"`
}

type processOrderRequest struct {
	Client clientRequest `json:"client"`
	Items  []itemRequest `json:"items"`
}

type quoteRequest struct {
	Items []itemRequest `json:"items"`
}

func toItems(in []itemRequest) ([]order.Item, error) {
	items := make([]order.Item, 0, len(in))
	for _, r := range in {
		it, err := order.NewItem(r.Name, r.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (h *OrderHandler) ProcessOrder(c *gin.Context) {
	var req processOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cl, err := client.NewClient(req.Client.Name, req.Client.Email, req.Client.Tier)
	if err != nil {
		writeError(c, err)
		return
	}
	items, err := toItems(req.Items)
	if err != nil {
		writeError(c, err)
		return
	}

	o, err := h.svc.ProcessOrder(c.Request.Context(), cl, items)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subtotal":        o.Subtotal(),
		"discount_rate":   o.DiscountRate(),
		"discount_amount": o.DiscountAmount(),
		"total":           o.Total(),
		"items_count":     o.ItemsCount(),
		"summary":         app.Summary(o),
	})
}

func (h *OrderHandler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := toItems(req.Items)
	if err != nil {
		writeError(c, err)
		return
	}

	final, err := h.svc.CalculateFinalPrice(c.Request.Context(), items)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"final_price": final})
}
