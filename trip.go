package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/zeroshade/ferryapi/types"
)

func addTripRoutes(router *gin.RouterGroup, db *gorm.DB) {
	router.GET("/trips", GetTrips(db))
	router.PUT("/trips", checkJWT("manage:trips"), logActionMiddle(db), SaveTrip(db))
	router.POST("/trips/generate", checkJWT("manage:trips"), PreviewGenerate(db))
	router.POST("/trips/generate/confirm", checkJWT("manage:trips"), logActionMiddle(db), ConfirmGenerate(db))
	router.POST("/trips/:tripid/cancel", checkJWT("manage:trips"), logActionMiddle(db), CancelTrip(db))
	router.DELETE("/trips/:tripid", checkJWT("manage:trips"), logActionMiddle(db), DeleteTrip(db))
}

func validTrip(t *types.Trip) (string, bool) {
	dep, err := time.Parse(slotFormat, t.Departure)
	if err != nil {
		return "bad departure time", false
	}
	arr, err := time.Parse(slotFormat, t.Arrival)
	if err != nil {
		return "bad arrival time", false
	}
	if !dep.Before(arr) {
		return "departure must be before arrival", false
	}
	if t.FareMult <= 0 {
		return "fare multiplier must be greater than zero", false
	}
	switch t.Status {
	case "", types.TripScheduled, types.TripBoarding, types.TripDeparted,
		types.TripArrived, types.TripCancelled:
	default:
		return "unknown trip status", false
	}
	return "", true
}

func GetTrips(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Where("operator_id = ?", c.Param("operatorid")).
			Order("travel_date asc, departure asc, id asc")

		if from := c.Query("from"); from != "" {
			q = q.Where("travel_date >= ?", from)
		}
		if to := c.Query("to"); to != "" {
			q = q.Where("travel_date <= ?", to)
		}
		if route := c.Query("route"); route != "" {
			q = q.Where("route_id = ?", route)
		}
		if vessel := c.Query("vessel"); vessel != "" {
			q = q.Where("vessel_id = ?", vessel)
		}
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}

		var trips []types.Trip
		q.Find(&trips)
		c.JSON(http.StatusOK, trips)
	}
}

// SaveTrip handles both creation and edits of a single trip, refusing exact
// duplicates of an existing sailing.
func SaveTrip(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var trip types.Trip
		if err := c.ShouldBindJSON(&trip); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if msg, ok := validTrip(&trip); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		trip.OperatorID = c.Param("operatorid")

		count := 0
		db.Model(&types.Trip{}).
			Where("operator_id = ? AND vessel_id = ? AND travel_date = ? AND departure = ? AND status != ? AND id != ?",
				trip.OperatorID, trip.VesselID, trip.TravelDate, trip.Departure, types.TripCancelled, trip.ID).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "vessel already sails at that time"})
			return
		}

		db.Save(&trip)
		c.JSON(http.StatusOK, &trip)
	}
}

func CancelTrip(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		db.Model(&types.Trip{}).
			Where("id = ? AND operator_id = ?", c.Param("tripid"), c.Param("operatorid")).
			Update("status", types.TripCancelled)
		c.Status(http.StatusOK)
	}
}

func DeleteTrip(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		db.Where("id = ? AND operator_id = ?", c.Param("tripid"), c.Param("operatorid")).Delete(&types.Trip{})
		c.Status(http.StatusOK)
	}
}

func existingSailings(db *gorm.DB, operator string, p *types.SchedulePattern) []types.Trip {
	var existing []types.Trip
	db.Find(&existing,
		"operator_id = ? AND vessel_id = ? AND status != ? AND travel_date BETWEEN ? AND ?",
		operator, p.VesselID, types.TripCancelled, p.Start, p.End)
	return existing
}

// PreviewGenerate expands a schedule pattern and reports which candidate
// sailings are safe and which collide with trips already on the books, so
// the client can ask for confirmation before the bulk insert.
func PreviewGenerate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pattern types.SchedulePattern
		if err := c.ShouldBindJSON(&pattern); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if msg, ok := validPattern(&pattern); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		candidates := expandPattern(&pattern)
		safe, conflicts := splitConflicts(candidates, existingSailings(db, c.Param("operatorid"), &pattern))

		c.JSON(http.StatusOK, gin.H{"candidates": safe, "conflicts": conflicts})
	}
}

func ConfirmGenerate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pattern types.SchedulePattern
		if err := c.ShouldBindJSON(&pattern); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if msg, ok := validPattern(&pattern); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		operator := c.Param("operatorid")
		candidates := expandPattern(&pattern)
		safe, conflicts := splitConflicts(candidates, existingSailings(db, operator, &pattern))

		tx := db.Begin()
		for i := range safe {
			safe[i].OperatorID = operator
			if err := tx.Create(&safe[i]).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"created": len(safe), "skipped": len(conflicts)})
	}
}
