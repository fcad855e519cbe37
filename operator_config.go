package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/zeroshade/ferryapi/types"
)

func addConfigRoutes(router *gin.RouterGroup, db *gorm.DB) {
	router.GET("/config", GetOperatorConfig(db))
	router.PUT("/config", checkJWT("manage:config"), logActionMiddle(db), UpdateOperatorConfig(db))
}

func GetOperatorConfig(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var conf types.OperatorConfig
		db.Find(&conf, "id = ?", c.Param("operatorid"))
		c.JSON(http.StatusOK, conf)
	}
}

func UpdateOperatorConfig(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var conf types.OperatorConfig
		if err := c.ShouldBindJSON(&conf); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		conf.ID = c.Param("operatorid")
		db.Save(&conf)
		c.Status(http.StatusOK)
	}
}
