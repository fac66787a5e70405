package institute

import (
	"errors"
	"fmt"
	"net/http"

	"rideinfo-api/internal/logs"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type InstituteController struct {
	InstituteService InstituteServiceAPI
	LS               LogServicePort
}

func (ic *InstituteController) List(c *gin.Context) {
	institutes, err := ic.InstituteService.List(c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": institutes})
}

func (ic *InstituteController) Get(c *gin.Context) {
	inst, err := ic.InstituteService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Institute not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"institute": inst})
}

func (ic *InstituteController) Create(c *gin.Context) {
	var req struct {
		Name          string `json:"name" binding:"required"`
		Address       string `json:"address"`
		ContactNumber string `json:"contact_number"`
		Email         string `json:"email"`
		City          string `json:"city"`
		State         string `json:"state"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := int(c.MustGet("userID").(float64))

	inst, err := ic.InstituteService.Create(Institute{
		Name:          req.Name,
		UserID:        userID,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		City:          req.City,
		State:         req.State,
	})
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	uid := uint(userID)
	entry := logs.SystemLog{
		Level:   "INFO",
		Service: "institute",
		Action:  "CREATE",
		Message: fmt.Sprintf("Institute %q created", inst.Name),
		UserID:  &uid,
	}
	if err := ic.LS.Log(entry, inst); err != nil {
		logrus.WithError(err).Warn("failed to insert institute create log")
	}

	c.JSON(http.StatusCreated, gin.H{"institute": inst})
}

func (ic *InstituteController) Update(c *gin.Context) {
	var input UpdateInstituteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inst, err := ic.InstituteService.Update(c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Institute not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"institute": inst})
}

func (ic *InstituteController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := ic.InstituteService.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Institute not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	userID := int(c.MustGet("userID").(float64))
	uid := uint(userID)
	entry := logs.SystemLog{
		Level:   "INFO",
		Service: "institute",
		Action:  "DELETE",
		Message: fmt.Sprintf("Institute %s deleted with its drivers", id),
		UserID:  &uid,
	}
	if err := ic.LS.Log(entry, gin.H{"institute_id": id}); err != nil {
		logrus.WithError(err).Warn("failed to insert institute delete log")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Institute deleted"})
}
