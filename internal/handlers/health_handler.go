package handlers

import (
	"net/http"

	"interview-service/configs"
	"interview-service/internal/llm"
	"interview-service/internal/store"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Config *configs.Config
	Store  *store.Store
	Client *llm.Client
}

func NewHealthHandler(cfg *configs.Config, st *store.Store, client *llm.Client) *HealthHandler {
	return &HealthHandler{Config: cfg, Store: st, Client: client}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"service":            h.Config.ServiceName,
		"version":            h.Config.ServiceVersion,
		"activeSessions":     h.Store.ActiveCount(),
		"providerConfigured": h.Client.Configured(),
	})
}
