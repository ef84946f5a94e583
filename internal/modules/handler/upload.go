package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vimco/vimco-api/internal/modules/serializer"
	"github.com/vimco/vimco-api/internal/modules/service"
)

const uploadField = "files"

type UploadHandler struct {
	svc service.UploadService
}

func NewUploadHandler(s service.UploadService) *UploadHandler {
	return &UploadHandler{svc: s}
}

// UploadFiles godoc
//
//	@Summary		Upload images
//	@Description	Store one or more images and return their public URLs in request order
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			files	formData	file	true	"Images to upload (repeatable)"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.UploadResponse
//	@Failure		400	{object}	serializer.Response
//	@Router			/upload/upload-files [post]
func (h *UploadHandler) UploadFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		readFailed(c, err)
		return
	}

	urls, err := h.svc.Upload(c.Request.Context(), form.File[uploadField])
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFiles),
			errors.Is(err, service.ErrFileTooLarge),
			errors.Is(err, service.ErrUnsupportedFile):
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.DBErr(err))
		}
		return
	}

	c.JSON(http.StatusOK, serializer.UploadResponse{
		Response: serializer.OK("Files uploaded successfully", nil),
		URLs:     urls,
	})
}
