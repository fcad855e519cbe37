package stripe

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/checkout/session"
	"github.com/stripe/stripe-go/v72/customer"
	"github.com/zeroshade/ferryapi/internal"
	"github.com/zeroshade/ferryapi/types"
)

func AddStripeRoutes(router *gin.RouterGroup, db *gorm.DB) {
	router.GET("/stripe/:stripe_session", GetSession(db))
	router.POST("/stripe", CreateSession(db))
	router.POST("/stripe/webhook", Webhook(db))
}

type createCheckoutSessionResponse struct {
	SessionID string `json:"id"`
}

type CreateSessionRequest struct {
	BookingCode string `json:"bookingCode"`
}

func init() {
	stripe.Key = os.Getenv("STRIPE_KEY")
}

var notifyMail = internal.SendNotifyEmail
var clientMail = internal.SendClientMail

func GetSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := &stripe.CheckoutSessionParams{}
		params.AddExpand("payment_intent.charges")
		params.AddExpand("line_items")
		sess, err := session.Get(c.Param("stripe_session"), params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, sess)
	}
}

// CreateSession opens a Stripe Checkout Session for a pending booking. The
// booking code travels in the payment metadata so the webhook can find it.
func CreateSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var booking types.Booking
		if db.Find(&booking, "code = ? AND operator_id = ?",
			req.BookingCode, c.Param("operatorid")).RecordNotFound() {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		if booking.Status != types.BookingPending {
			c.JSON(http.StatusConflict, gin.H{"error": "booking is not awaiting payment"})
			return
		}

		var cus *stripe.Customer
		var err error

		iter := customer.List(&stripe.CustomerListParams{Email: &booking.Email})
		if iter.Next() {
			cus = iter.Customer()
		} else {
			cus, err = customer.New(&stripe.CustomerParams{
				Name:  &booking.Name,
				Email: &booking.Email,
				Phone: &booking.Phone,
			})
			if err != nil {
				log.Println("Create Customer Error:", err)
				c.JSON(http.StatusFailedDependency, gin.H{"error": err.Error()})
				return
			}
		}

		amount := int64(booking.Amount * 100)
		quantity := int64(1)
		params := &stripe.CheckoutSessionParams{
			Customer:           &cus.ID,
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
			Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
			SuccessURL:         stripe.String(c.Request.Header.Get("x-booking-origin") + "?status=success&stripe_session_id={CHECKOUT_SESSION_ID}"),
			CancelURL:          stripe.String(c.Request.Header.Get("x-booking-origin") + "?status=cancelled&stripe_session_id={CHECKOUT_SESSION_ID}"),
			LineItems: []*stripe.CheckoutSessionLineItemParams{{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("Ferry Booking %s", booking.Code)),
						Description: stripe.String(fmt.Sprintf("%d seat(s)", booking.Seats)),
						Metadata:    map[string]string{"booking": booking.Code},
					},
					UnitAmount: &amount,
				},
				Quantity: &quantity,
			}},
		}
		params.IdempotencyKey = stripe.String(uuid.New().String())

		params.PaymentIntentData = &stripe.CheckoutSessionPaymentIntentDataParams{
			Description: stripe.String("Ferry Seat Purchase"),
			Metadata: map[string]string{
				"booking":  booking.Code,
				"operator": booking.OperatorID,
			},
		}

		sess, err := session.New(params)
		if err != nil {
			c.JSON(http.StatusFailedDependency, gin.H{"error": err.Error()})
			return
		}

		db.Model(&booking).Update("payment_id", sess.PaymentIntent.ID)

		c.JSON(http.StatusOK, createCheckoutSessionResponse{SessionID: sess.ID})
	}
}

// confirmBooking marks a paid booking confirmed, then mails the passenger
// their pass link and notifies the operator. Stripe delivers both
// checkout.session.completed and payment_intent.succeeded for one payment,
// so a booking that is already confirmed is left alone.
func confirmBooking(db *gorm.DB, apiKey, host string, booking *types.Booking, paymentID string) {
	if booking.Status == types.BookingConfirmed {
		return
	}

	db.Model(booking).Updates(map[string]interface{}{
		"status":     types.BookingConfirmed,
		"payment_id": paymentID,
	})

	var trip types.Trip
	db.Find(&trip, "id = ?", booking.TripID)
	var route types.Route
	db.Find(&route, "id = ?", trip.RouteID)
	tripDesc := fmt.Sprintf("%s, %s %s", route.Name,
		trip.TravelDate.Format(types.DateFormat), trip.Departure)

	var conf types.OperatorConfig
	db.Find(&conf, "id = ?", booking.OperatorID)

	if _, err := clientMail(apiKey, host, booking.Email, booking, &conf); err != nil {
		log.Println("client email failed:", err)
	}
	if err := notifyMail(apiKey, &conf, booking, tripDesc); err != nil {
		log.Println("notify email failed:", err)
	}

	if conf.SendSMS {
		t := internal.NewDefaultTwilio()
		t.Send(conf.NotifyNumber, "Seats purchased by "+booking.Name)
	}
}

// Webhook processes the Stripe events we care about: confirming a booking
// once its checkout session or payment lands, and releasing seats on refund.
func Webhook(db *gorm.DB) gin.HandlerFunc {
	apiKey := os.Getenv("MAILGUN_API_KEY")

	return func(c *gin.Context) {
		event := stripe.Event{}
		if err := c.BindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log.Println("stripe event:", event.Type)

		switch event.Type {
		case "checkout.session.completed":
			var sess stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if sess.PaymentIntent == nil {
				c.Status(http.StatusOK)
				return
			}

			var booking types.Booking
			if db.Find(&booking, "payment_id = ?", sess.PaymentIntent.ID).RecordNotFound() {
				log.Println("checkout session for unknown booking:", sess.ID)
				c.Status(http.StatusOK)
				return
			}

			confirmBooking(db, apiKey, c.Request.Host, &booking, sess.PaymentIntent.ID)

		case "payment_intent.succeeded":
			var paymentIntent stripe.PaymentIntent
			if err := json.Unmarshal(event.Data.Raw, &paymentIntent); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			code := paymentIntent.Metadata["booking"]
			var booking types.Booking
			if db.Find(&booking, "code = ?", code).RecordNotFound() {
				log.Println("payment for unknown booking:", code)
				c.Status(http.StatusOK)
				return
			}

			confirmBooking(db, apiKey, c.Request.Host, &booking, paymentIntent.ID)

		case "charge.refunded":
			var charge stripe.Charge
			if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			db.Model(&types.Booking{}).
				Where("payment_id = ?", charge.PaymentIntent.ID).
				Update("status", types.BookingCancelled)
		}

		c.Status(http.StatusOK)
	}
}
