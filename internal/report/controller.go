package report

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService ReportServiceAPI
}

func (rc *ReportController) DownloadRoster(c *gin.Context) {
	contentType, filename, data, err := rc.ReportService.RosterExport(c.Query("institute_id"), c.Query("format"))
	if err != nil {
		if errors.Is(err, ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
