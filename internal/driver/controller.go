package driver

import (
	"errors"
	"fmt"
	"net/http"

	"rideinfo-api/internal/logs"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DriverController struct {
	DriverService DriverServiceAPI
	LS            LogServicePort
}

func (dc *DriverController) List(c *gin.Context) {
	instituteID := c.Query("institute_id")
	if instituteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "institute_id is required"})
		return
	}

	drivers, err := dc.DriverService.List(instituteID, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": drivers})
}

func (dc *DriverController) Get(c *gin.Context) {
	d, err := dc.DriverService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"driver": d})
}

func validationError(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrBusNumberRequired) ||
		errors.Is(err, ErrInstituteRequired) ||
		errors.Is(err, ErrInvalidBloodGroup) ||
		errors.Is(err, ErrInvalidStatus)
}

func (dc *DriverController) Create(c *gin.Context) {
	var req struct {
		Name             string `json:"name" binding:"required"`
		BusNumber        string `json:"bus_number" binding:"required"`
		InstituteID      string `json:"institute_id" binding:"required"`
		ContactNumber    string `json:"contact_number"`
		Email            string `json:"email"`
		LicenseNumber    string `json:"license_number"`
		Address          string `json:"address"`
		EmergencyContact string `json:"emergency_contact"`
		BloodGroup       string `json:"blood_group"`
		JoiningDate      string `json:"joining_date"`
		Status           string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := int(c.MustGet("userID").(float64))

	d, err := dc.DriverService.Create(Driver{
		Name:             req.Name,
		BusNumber:        req.BusNumber,
		InstituteID:      req.InstituteID,
		UserID:           userID,
		ContactNumber:    req.ContactNumber,
		Email:            req.Email,
		LicenseNumber:    req.LicenseNumber,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		BloodGroup:       req.BloodGroup,
		JoiningDate:      req.JoiningDate,
		Status:           req.Status,
	})
	if err != nil {
		if validationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	uid := uint(userID)
	entry := logs.SystemLog{
		Level:   "INFO",
		Service: "driver",
		Action:  "CREATE",
		Message: fmt.Sprintf("Driver %q added to institute %s", d.Name, d.InstituteID),
		UserID:  &uid,
	}
	if err := dc.LS.Log(entry, d); err != nil {
		logrus.WithError(err).Warn("failed to insert driver create log")
	}

	c.JSON(http.StatusCreated, gin.H{"driver": d})
}

func (dc *DriverController) CreateBulk(c *gin.Context) {
	var req struct {
		InstituteID string `json:"institute_id" binding:"required"`
		Data        string `json:"data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := int(c.MustGet("userID").(float64))

	drivers, err := dc.DriverService.CreateBulk(req.InstituteID, req.Data, userID)
	if err != nil {
		if validationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	uid := uint(userID)
	entry := logs.SystemLog{
		Level:   "INFO",
		Service: "driver",
		Action:  "BULK_CREATE",
		Message: fmt.Sprintf("%d drivers added to institute %s", len(drivers), req.InstituteID),
		UserID:  &uid,
	}
	if err := dc.LS.Log(entry, gin.H{"institute_id": req.InstituteID, "count": len(drivers)}); err != nil {
		logrus.WithError(err).Warn("failed to insert driver bulk create log")
	}

	c.JSON(http.StatusCreated, gin.H{"drivers": drivers, "count": len(drivers)})
}

func (dc *DriverController) Update(c *gin.Context) {
	var input UpdateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := dc.DriverService.Update(c.Param("id"), input)
	if err != nil {
		switch {
		case validationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"driver": d})
}

func (dc *DriverController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := dc.DriverService.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	userID := int(c.MustGet("userID").(float64))
	uid := uint(userID)
	entry := logs.SystemLog{
		Level:   "INFO",
		Service: "driver",
		Action:  "DELETE",
		Message: fmt.Sprintf("Driver %s deleted", id),
		UserID:  &uid,
	}
	if err := dc.LS.Log(entry, gin.H{"driver_id": id}); err != nil {
		logrus.WithError(err).Warn("failed to insert driver delete log")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted"})
}
