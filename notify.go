package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/zeroshade/ferryapi/internal"
	"github.com/zeroshade/ferryapi/types"
)

var mailgunAPIKey = os.Getenv("MAILGUN_API_KEY")

// Resend re-delivers the booking confirmation email, optionally to a
// corrected address, and fires the passenger SMS when a phone is given.
func Resend(db *gorm.DB) gin.HandlerFunc {
	type Req struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	}

	return func(c *gin.Context) {
		var r Req
		if err := c.ShouldBindJSON(&r); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var booking types.Booking
		if db.Find(&booking, "code = ? AND operator_id = ?",
			c.Param("code"), c.Param("operatorid")).RecordNotFound() {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}

		var conf types.OperatorConfig
		db.Find(&conf, "id = ?", c.Param("operatorid"))

		email := r.Email
		if email == "" {
			email = booking.Email
		}

		response, err := internal.SendClientMail(mailgunAPIKey, c.Request.Host, email, &booking, &conf)
		if err != nil {
			c.JSON(http.StatusFailedDependency, gin.H{"error": err.Error()})
			return
		}
		log.Println("email response: ", response)

		if r.Phone != "" {
			t := internal.NewDefaultTwilio()
			t.Send(r.Phone, "Boarding Passes: "+
				internal.PassesLink(c.Request.Host, booking.OperatorID, booking.Code))
		}

		c.Status(http.StatusOK)
	}
}
