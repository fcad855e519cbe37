package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/lithammer/shortuuid/v3"
	"github.com/zeroshade/ferryapi/types"
)

func addBookingRoutes(router *gin.RouterGroup, db *gorm.DB) {
	router.GET("/bookings", checkJWT("read:bookings"), GetBookings(db))
	router.POST("/bookings", CreateBooking(db))
	router.GET("/bookings/:code", LookupBooking(db))
	router.POST("/bookings/:code/cancel", CancelBooking(db))
	router.POST("/bookings/:code/resend", checkJWT("read:bookings"), Resend(db))
	router.GET("/bookings/:code/passes", GetBoardingPasses(db))
}

// seatsFree applies the capacity rule: pending and confirmed seats both hold
// space, cancelled seats return to the pool.
func seatsFree(capacity, booked uint) uint {
	if booked >= capacity {
		return 0
	}
	return capacity - booked
}

func bookedSeats(db *gorm.DB, tripID uint) uint {
	var booked uint
	db.Model(&types.Booking{}).
		Where("trip_id = ? AND status IN (?)", tripID, []string{types.BookingPending, types.BookingConfirmed}).
		Select("COALESCE(SUM(seats), 0)").Row().Scan(&booked)
	return booked
}

func GetBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Order("created_at desc").Where("operator_id = ?", c.Param("operatorid"))
		if trip := c.Query("trip"); trip != "" {
			q = q.Where("trip_id = ?", trip)
		}
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}

		var bookings []types.Booking
		q.Find(&bookings)
		c.JSON(http.StatusOK, bookings)
	}
}

func LookupBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var booking types.Booking
		if db.Find(&booking, "code = ? AND operator_id = ?",
			c.Param("code"), c.Param("operatorid")).RecordNotFound() {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}

func CreateBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var booking types.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if booking.Seats == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seat count must be greater than zero"})
			return
		}

		operator := c.Param("operatorid")

		// Lock the trip row so two simultaneous bookings cannot both pass
		// the capacity check.
		tx := db.Begin()

		var trip types.Trip
		if tx.Set("gorm:query_option", "FOR UPDATE").
			Find(&trip, "id = ? AND operator_id = ?", booking.TripID, operator).RecordNotFound() {
			tx.Rollback()
			c.JSON(http.StatusNotFound, gin.H{"error": "trip not found"})
			return
		}
		if trip.Status == types.TripCancelled {
			tx.Rollback()
			c.JSON(http.StatusConflict, gin.H{"error": "trip is cancelled"})
			return
		}

		var vessel types.Vessel
		tx.Find(&vessel, "id = ? AND operator_id = ?", trip.VesselID, operator)

		left := seatsFree(vessel.Capacity, bookedSeats(tx, trip.ID))
		if booking.Seats > left {
			tx.Rollback()
			c.JSON(http.StatusConflict, gin.H{"error": "not enough seats", "seatsLeft": left})
			return
		}

		var route types.Route
		tx.Find(&route, "id = ? AND operator_id = ?", trip.RouteID, operator)

		booking.Code = shortuuid.New()
		booking.OperatorID = operator
		booking.Status = types.BookingPending
		booking.Amount = route.BaseFare * trip.FareMult * float64(booking.Seats)

		if err := tx.Create(&booking).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, &booking)
	}
}

func CancelBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var booking types.Booking
		if db.Find(&booking, "code = ? AND operator_id = ?",
			c.Param("code"), c.Param("operatorid")).RecordNotFound() {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}

		if booking.Status == types.BookingCancelled {
			c.JSON(http.StatusOK, booking)
			return
		}

		db.Model(&booking).Update("status", types.BookingCancelled)
		booking.Status = types.BookingCancelled
		c.JSON(http.StatusOK, booking)
	}
}
