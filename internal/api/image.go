package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookify/backend/internal/service"
	"github.com/pageza/cookify/backend/internal/types"
)

// ImageHandler turns an uploaded file into a value for the form's image
// preview: a data URL or an object URL, depending on the encoder
type ImageHandler struct {
	encoder  service.ImageEncoder
	maxBytes int64
}

func NewImageHandler(encoder service.ImageEncoder, maxBytes int64) *ImageHandler {
	return &ImageHandler{encoder: encoder, maxBytes: maxBytes}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/images", h.UploadImage)
}

// UploadImage reads the multipart field "file"
func (h *ImageHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "file is required"})
		return
	}
	if h.maxBytes > 0 && header.Size > h.maxBytes {
		respondError(c, service.ErrImageTooLarge)
		return
	}

	file, err := header.Open()
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer file.Close()

	var r io.Reader = file
	if h.maxBytes > 0 {
		r = io.LimitReader(file, h.maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		abortWithError(c, err)
		return
	}

	image, err := h.encoder.Encode(c.Request.Context(), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.ImageResponse{Image: image})
}
