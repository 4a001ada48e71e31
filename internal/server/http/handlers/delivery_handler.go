package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/attesto/attesto/internal/domain/model"
	"github.com/attesto/attesto/internal/server/http/dto"
)

// DeliveryHandler manages document upload and download endpoints.
type DeliveryHandler struct {
	facade   DeliveryFacade
	maxBytes int64
}

// NewDeliveryHandler constructs DeliveryHandler.
func NewDeliveryHandler(facade DeliveryFacade, maxBytes int64) *DeliveryHandler {
	return &DeliveryHandler{facade: facade, maxBytes: maxBytes}
}

// UploadTranslation handles POST /api/orders/:orderID/translation.
func (h *DeliveryHandler) UploadTranslation(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil || user.Role != model.RoleTranslator {
		c.Status(http.StatusForbidden)
		return
	}

	fileName, data, ok := h.readUpload(c)
	if !ok {
		return
	}

	if err := h.facade.UploadTranslation(c.Request.Context(), user.ID, c.Param("orderID"), fileName, data); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// DownloadTranslation handles GET /api/orders/:orderID/translation.
func (h *DeliveryHandler) DownloadTranslation(c *gin.Context) {
	user := CurrentUser(c)
	url, err := h.facade.TranslationURL(c.Request.Context(), user, c.Param("orderID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SignedURLResponse{URL: url})
}

// UploadOriginal handles POST /api/orders/:orderID/files.
func (h *DeliveryHandler) UploadOriginal(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil || user.Role != model.RoleCustomer {
		c.Status(http.StatusForbidden)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	fileName, data, ok := h.readFormFile(c, header)
	if !ok {
		return
	}

	file, suggestedPages, err := h.facade.UploadOriginal(c.Request.Context(), user.ID, c.Param("orderID"), fileName, header.Header.Get("Content-Type"), data)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := toOrderFileResponse(*file)
	resp.SuggestedPages = suggestedPages
	c.JSON(http.StatusCreated, resp)
}

// ListOriginals handles GET /api/orders/:orderID/files.
func (h *DeliveryHandler) ListOriginals(c *gin.Context) {
	user := CurrentUser(c)
	files, err := h.facade.OrderOriginals(c.Request.Context(), user, c.Param("orderID"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OrderFileResponse, 0, len(files))
	for _, f := range files {
		response = append(response, toOrderFileResponse(f))
	}
	c.JSON(http.StatusOK, response)
}

// DownloadOriginal handles GET /api/orders/:orderID/files/:fileID.
func (h *DeliveryHandler) DownloadOriginal(c *gin.Context) {
	user := CurrentUser(c)
	fileID, err := strconv.ParseInt(c.Param("fileID"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	url, err := h.facade.OriginalURL(c.Request.Context(), user, c.Param("orderID"), fileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SignedURLResponse{URL: url})
}

func (h *DeliveryHandler) readUpload(c *gin.Context) (string, []byte, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		c.Status(http.StatusBadRequest)
		return "", nil, false
	}
	name, data, ok := h.readFormFile(c, header)
	return name, data, ok
}

func (h *DeliveryHandler) readFormFile(c *gin.Context, header *multipart.FileHeader) (string, []byte, bool) {
	if header.Size > h.maxBytes {
		c.Status(http.StatusRequestEntityTooLarge)
		return "", nil, false
	}
	src, err := header.Open()
	if err != nil {
		c.Status(http.StatusBadRequest)
		return "", nil, false
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, h.maxBytes+1))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return "", nil, false
	}
	if int64(len(data)) > h.maxBytes {
		c.Status(http.StatusRequestEntityTooLarge)
		return "", nil, false
	}
	return header.Filename, data, true
}
