package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/attesto/attesto/internal/server/http/dto"
)

// TranslatorHandler serves the public translator directory.
type TranslatorHandler struct {
	facade DirectoryFacade
}

// NewTranslatorHandler constructs TranslatorHandler.
func NewTranslatorHandler(facade DirectoryFacade) *TranslatorHandler {
	return &TranslatorHandler{facade: facade}
}

// Directory handles GET /api/translators. Contact details are withheld from
// the public listing.
func (h *TranslatorHandler) Directory(c *gin.Context) {
	translators, err := h.facade.PublicTranslators(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.TranslatorResponse, 0, len(translators))
	for _, t := range translators {
		entry := toTranslatorResponse(t)
		entry.ContactEmail = ""
		response = append(response, entry)
	}
	c.JSON(http.StatusOK, response)
}
