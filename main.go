package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"

	"github.com/zeroshade/ferryapi/stripe"
	"github.com/zeroshade/ferryapi/types"
)

func main() {
	godotenv.Load()

	URI := os.Getenv("DATABASE_URL")
	if URI == "" {
		log.Fatal("must set $DATABASE_URL")
	}

	db, err := gorm.Open("postgres", URI)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS hstore").Error; err != nil {
		log.Fatal(err)
	}

	db.AutoMigrate(&types.Zone{}, &types.Island{}, &types.Route{}, &types.Vessel{},
		&types.Trip{}, &types.Booking{}, &types.FAQCategory{}, &types.FAQ{},
		&types.Translation{}, &types.FareCategory{}, &types.OperatorConfig{},
		&types.LogAction{}, &Announcement{})

	port := os.Getenv("PORT")
	if port == "" {
		log.Fatal("must set $PORT")
	}

	config := cors.DefaultConfig()
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")
	config.AllowOrigins = []string{"*"}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(cors.New(config))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/:operatorid")
	addGeoRoutes(api, db)
	addRouteRoutes(api, db)
	addVesselRoutes(api, db)
	addTripRoutes(api, db)
	addBookingRoutes(api, db)
	addFaqRoutes(api, db)
	addTranslationRoutes(api, db)
	addFareRoutes(api, db)
	addTeamRoutes(api, db)
	addConfigRoutes(api, db)
	addAnnouncementRoutes(api, db)
	addLogRoutes(api, db)
	stripe.AddStripeRoutes(api, db)

	router.Run(":" + port)
}
