package feedback

import (
	"errors"
	"net/http"

	"rideinfo-api/internal/logs"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
)

type FeedbackController struct {
	FeedbackService FeedbackServiceAPI
	LS              LogServicePort
}

func (fc *FeedbackController) Create(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
		Rating  int    `json:"rating"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := int(c.MustGet("userID").(float64))

	fb, err := fc.FeedbackService.Create(Feedback{
		UserID:  userID,
		Message: req.Message,
		Rating:  req.Rating,
	})
	if err != nil {
		if errors.Is(err, ErrMessageRequired) || errors.Is(err, ErrInvalidRating) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	uid := uint(userID)
	entry := logs.SystemLog{
		Level:   "INFO",
		Service: "feedback",
		Action:  "CREATE",
		Message: "Feedback submitted",
		UserID:  &uid,
	}
	if err := fc.LS.Log(entry, gin.H{"feedback_id": fb.ID, "rating": fb.Rating}); err != nil {
		logrus.WithError(err).Warn("failed to insert feedback log")
	}

	c.JSON(http.StatusCreated, gin.H{"feedback": fb})
}
