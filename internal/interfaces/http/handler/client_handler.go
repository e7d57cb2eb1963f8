package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "order_pricing/internal/application/client"
	"order_pricing/internal/domain/client"
)

type ClientHandler struct {
	svc *app.Service
}

func NewClientHandler(svc *app.Service) *ClientHandler {
	return &ClientHandler{svc: svc}
}

type clientResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Tier  string `json:"tier"`
}

func toClientResponse(c client.Client) clientResponse {
	return clientResponse{Name: c.Name(), Email: c.Email(), Tier: c.Tier()}
}

func (h *ClientHandler) RegisterClient(c *gin.Context) {
	var cmd app.RegisterClientCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registered, err := h.svc.Register(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toClientResponse(registered))
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.svc.ListClients(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]clientResponse, 0, len(clients))
	for _, cl := range clients {
		out = append(out, toClientResponse(cl))
	}
	c.JSON(http.StatusOK, gin.H{"clients": out})
}
