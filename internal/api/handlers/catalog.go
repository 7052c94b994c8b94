package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/puckdata/internal/registry"
	"github.com/jstittsworth/puckdata/pkg/utils"
)

// CatalogHandler lists the registered operations with their prices and
// input contracts so callers can discover what they can buy.
type CatalogHandler struct {
	registry *registry.Registry
}

func NewCatalogHandler(reg *registry.Registry) *CatalogHandler {
	return &CatalogHandler{registry: reg}
}

func (h *CatalogHandler) ListOperations(c *gin.Context) {
	utils.SendSuccess(c, gin.H{"operations": h.registry.All()})
}
