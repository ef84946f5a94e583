package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/vimco/vimco-api/internal/modules/model"
	"github.com/vimco/vimco-api/internal/modules/schema"
	"github.com/vimco/vimco-api/internal/modules/serializer"
	"github.com/vimco/vimco-api/internal/modules/service"
)

const msgNoImportData = "No project data provided"

type ImportHandler struct {
	svc service.ProjectService
}

func NewImportHandler(s service.ProjectService) *ImportHandler {
	return &ImportHandler{svc: s}
}

// BulkImport godoc
//
//	@Summary		Bulk import projects
//	@Description	Insert spreadsheet rows as projects in one batch. Rows are stored without validation.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	schema.ImportRequest	true	"Rows converted from the spreadsheet"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Failure		400	{object}	serializer.Response
//	@Failure		413	{object}	serializer.Response
//	@Failure		500	{object}	serializer.Response
//	@Router			/project/bulk-upload-project [post]
func (h *ImportHandler) BulkImport(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		readFailed(c, err)
		return
	}

	req := schema.ImportRequest{}
	if len(body) > 0 {
		if err := sonic.Unmarshal(body, &req); err != nil {
			c.JSON(http.StatusBadRequest, serializer.Fail("Invalid project data: "+err.Error()))
			return
		}
	}

	rows := make([]*model.Project, 0, len(req.Projects))
	for _, r := range req.Projects {
		rows = append(rows, r.Model())
	}

	n, err := h.svc.Import(c.Request.Context(), rows)
	if err != nil {
		if errors.Is(err, service.ErrNoImportData) {
			c.JSON(http.StatusBadRequest, serializer.Fail(msgNoImportData))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Fail("Import failed"))
		return
	}

	res := serializer.OK(fmt.Sprintf("%d Projects Imported Successfully", n), nil)
	res.Count = &n
	c.JSON(http.StatusOK, res)
}
