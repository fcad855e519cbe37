package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/zeroshade/ferryapi/types"
)

func addVesselRoutes(router *gin.RouterGroup, db *gorm.DB) {
	router.GET("/vessels", getVessels(db))
	router.POST("/vessels", checkJWT("manage:vessels"), logActionMiddle(db), createVessel(db))
	router.PUT("/vessels", checkJWT("manage:vessels"), logActionMiddle(db), modifyVessel(db))
	router.DELETE("/vessels/:vesselid", checkJWT("manage:vessels"), logActionMiddle(db), deleteVessel(db))
}

func validVessel(v *types.Vessel) (string, bool) {
	if v.Capacity == 0 {
		return "capacity must be greater than zero", false
	}
	switch v.Status {
	case "", types.VesselInService, types.VesselMaintenance, types.VesselRetired:
	default:
		return "unknown vessel status", false
	}
	if v.MaintenanceStart != "" || v.MaintenanceEnd != "" {
		start, err := time.Parse(types.DateFormat, v.MaintenanceStart)
		if err != nil {
			return "bad maintenance start date", false
		}
		end, err := time.Parse(types.DateFormat, v.MaintenanceEnd)
		if err != nil {
			return "bad maintenance end date", false
		}
		if end.Before(start) {
			return "maintenance end before start", false
		}
	}
	return "", true
}

func getVessels(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Order("name asc").Where("operator_id = ?", c.Param("operatorid"))
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}

		var vessels []types.Vessel
		q.Find(&vessels)
		c.JSON(http.StatusOK, vessels)
	}
}

func createVessel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vessel types.Vessel
		if err := c.ShouldBindJSON(&vessel); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if msg, ok := validVessel(&vessel); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		vessel.OperatorID = c.Param("operatorid")
		if nameTaken(db, &types.Vessel{}, vessel.OperatorID, vessel.Name, vessel.ID) {
			c.JSON(http.StatusConflict, gin.H{"error": "vessel name already in use"})
			return
		}

		db.Create(&vessel)
		c.JSON(http.StatusOK, vessel)
	}
}

func modifyVessel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vessel types.Vessel
		if err := c.ShouldBindJSON(&vessel); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if msg, ok := validVessel(&vessel); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		vessel.OperatorID = c.Param("operatorid")
		if nameTaken(db, &types.Vessel{}, vessel.OperatorID, vessel.Name, vessel.ID) {
			c.JSON(http.StatusConflict, gin.H{"error": "vessel name already in use"})
			return
		}

		db.Save(&vessel)
		c.Status(http.StatusOK)
	}
}

func deleteVessel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		db.Where("id = ? AND operator_id = ?", c.Param("vesselid"), c.Param("operatorid")).Delete(&types.Vessel{})
		c.Status(http.StatusOK)
	}
}
