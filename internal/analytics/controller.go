package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService AnalyticsServiceAPI
}

func (ac *AnalyticsController) Summary(c *gin.Context) {
	summary, err := ac.AnalyticsService.GetSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
