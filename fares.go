package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/zeroshade/ferryapi/types"
)

func addFareRoutes(router *gin.RouterGroup, db *gorm.DB) {
	router.GET("/fares", GetFareCats(db))
	router.PUT("/fares", checkJWT("manage:routes"), logActionMiddle(db), SaveFareCats(db))
}

// GetFareCats returns a function that fetchs all the fare categories from the db
func GetFareCats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cats []types.FareCategory
		db.Find(&cats, "operator_id = ?", c.Param("operatorid"))
		c.JSON(http.StatusOK, cats)
	}
}

// SaveFareCats returns a function that will update and save/create
// all fare categories that came in from a JSON request
func SaveFareCats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cats []types.FareCategory
		if err := c.ShouldBindJSON(&cats); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		for _, cat := range cats {
			cat.OperatorID = c.Param("operatorid")
			db.Save(&cat)
		}
	}
}
