package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
	"github.com/zeroshade/ferryapi/types"
)

const passHeight = 65
const left = 5
const spaceBetween = 15

func drawPass(f *gofpdf.Fpdf, passTitle, tripDesc string, vessel *types.Vessel, name, qrname string) {
	var opt gofpdf.ImageOptions
	opt.ImageType = "png"

	_, _, mtop, mbottom := f.GetMargins()
	starty := f.GetY() - mtop + 10
	_, pageh := f.GetPageSize()

	if starty+passHeight > pageh-mbottom {
		f.AddPage()
		starty = f.GetY()
	}

	red, green, blue := 0, 64, 128
	if colorBytes, err := hex.DecodeString(vessel.Color); err == nil && len(colorBytes) == 3 {
		red = int(colorBytes[0])
		green = int(colorBytes[1])
		blue = int(colorBytes[2])
	}

	f.SetFillColor(red, green, blue)
	f.SetDrawColor(red, green, blue)
	f.Rect(left, starty, 205, passHeight, "D")
	f.SetX(left)
	f.SetFont("Courier", "B", 18)
	f.SetTextColor(255, 255, 255)
	f.CellFormat(205, 7, passTitle, "B", 1, "C", true, 0, "")

	f.SetTextColor(0, 0, 0)
	f.SetFont("Courier", "B", 16)
	f.SetX(left)
	f.Cell(40, 7, "Boarding Pass")

	f.Ln(-1)
	f.SetFont("Courier", "B", 16)
	f.SetTextColor(red, green, blue)
	f.SetX(left)
	f.Cell(40, 7, vessel.Name)
	f.SetTextColor(0, 0, 0)

	f.Ln(-1)
	f.SetFont("Courier", "B", 14)
	f.SetX(left)
	f.Cell(40, 7, "Trip:")
	f.SetFont("Courier", "", 14)
	f.Cell(100, 7, tripDesc)

	f.Ln(15)
	f.SetX(left)
	f.SetFont("Courier", "B", 14)
	f.Cell(40, 7, "Booked By:")
	f.SetFont("Courier", "", 14)
	f.Cell(50, 7, name)

	f.Ln(20)
	f.SetFont("Courier", "I", 8)
	f.Cell(40, 8, qrname)

	f.ImageOptions(qrname, 205-40, starty+18, 40, 0, false, opt, 0, "")

	f.SetXY(0, starty+passHeight+spaceBetween)
}

func generatePdf(booking *types.Booking, trip *types.Trip, route *types.Route, vessel *types.Vessel, passTitle string, w io.Writer) {
	var opt gofpdf.ImageOptions
	opt.ImageType = "png"

	pdf := gofpdf.New("P", "mm", "Letter", ".")
	pdf.SetTitle("Boarding Passes", false)

	tripDesc := fmt.Sprintf("%s, %s %s", route.Name,
		trip.TravelDate.Format(types.DateFormat), trip.Departure)

	pdf.AddPage()
	for n := uint(1); n <= booking.Seats; n++ {
		qrname := fmt.Sprintf("%s-%d", booking.Code, n)
		data, _ := qrcode.Encode(qrname, qrcode.High, 50)
		pdf.RegisterImageOptionsReader(qrname, opt, bytes.NewReader(data))
		drawPass(pdf, passTitle, tripDesc, vessel, booking.Name, qrname)
	}
	pdf.Output(w)
}

func GetBoardingPasses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		operator := c.Param("operatorid")

		var config types.OperatorConfig
		db.Find(&config, "id = ?", operator)

		var booking types.Booking
		if db.Find(&booking, "code = ? AND operator_id = ?",
			c.Param("code"), operator).RecordNotFound() {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		if booking.Status == types.BookingCancelled {
			c.JSON(http.StatusConflict, gin.H{"error": "booking is cancelled"})
			return
		}

		var trip types.Trip
		db.Find(&trip, "id = ?", booking.TripID)
		var route types.Route
		db.Find(&route, "id = ?", trip.RouteID)
		var vessel types.Vessel
		db.Find(&vessel, "id = ?", trip.VesselID)

		c.Status(http.StatusOK)
		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", `attachment; filename="boardingpasses_`+booking.Code+`.pdf"`)
		generatePdf(&booking, &trip, &route, &vessel, config.PassTitle, c.Writer)
	}
}
