package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/zeroshade/ferryapi/types"
)

func addGeoRoutes(router *gin.RouterGroup, db *gorm.DB) {
	router.GET("/zones", getZones(db))
	router.POST("/zones", checkJWT("manage:geo"), logActionMiddle(db), createZone(db))
	router.PUT("/zones", checkJWT("manage:geo"), logActionMiddle(db), modifyZone(db))
	router.DELETE("/zones/:zoneid", checkJWT("manage:geo"), logActionMiddle(db), deleteZone(db))

	router.GET("/islands", getIslands(db))
	router.POST("/islands", checkJWT("manage:geo"), logActionMiddle(db), createIsland(db))
	router.PUT("/islands", checkJWT("manage:geo"), logActionMiddle(db), modifyIsland(db))
	router.DELETE("/islands/:islandid", checkJWT("manage:geo"), logActionMiddle(db), deleteIsland(db))
}

// nameTaken reports whether another record of the given model already uses
// this name for the operator.
func nameTaken(db *gorm.DB, model interface{}, operator, name string, selfID uint) bool {
	count := 0
	db.Model(model).Where("operator_id = ? AND name = ? AND id != ?", operator, name, selfID).Count(&count)
	return count > 0
}

func getZones(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var zones []types.Zone
		db.Order("name asc").Find(&zones, "operator_id = ?", c.Param("operatorid"))
		c.JSON(http.StatusOK, zones)
	}
}

func createZone(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var zone types.Zone
		if err := c.ShouldBindJSON(&zone); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		zone.OperatorID = c.Param("operatorid")
		if nameTaken(db, &types.Zone{}, zone.OperatorID, zone.Name, zone.ID) {
			c.JSON(http.StatusConflict, gin.H{"error": "zone name already in use"})
			return
		}

		db.Create(&zone)
		c.JSON(http.StatusOK, zone)
	}
}

func modifyZone(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var zone types.Zone
		if err := c.ShouldBindJSON(&zone); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		zone.OperatorID = c.Param("operatorid")
		if nameTaken(db, &types.Zone{}, zone.OperatorID, zone.Name, zone.ID) {
			c.JSON(http.StatusConflict, gin.H{"error": "zone name already in use"})
			return
		}

		db.Save(&zone)
		c.Status(http.StatusOK)
	}
}

func deleteZone(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		count := 0
		db.Model(&types.Island{}).
			Where("operator_id = ? AND zone_id = ?", c.Param("operatorid"), c.Param("zoneid")).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "zone still has islands"})
			return
		}

		db.Where("id = ? AND operator_id = ?", c.Param("zoneid"), c.Param("operatorid")).Delete(&types.Zone{})
		c.Status(http.StatusOK)
	}
}

func getIslands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var islands []types.Island
		q := db.Order("name asc").Where("operator_id = ?", c.Param("operatorid"))
		if zone := c.Query("zone"); zone != "" {
			q = q.Where("zone_id = ?", zone)
		}
		q.Find(&islands)
		c.JSON(http.StatusOK, islands)
	}
}

func createIsland(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var island types.Island
		if err := c.ShouldBindJSON(&island); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		island.OperatorID = c.Param("operatorid")
		if nameTaken(db, &types.Island{}, island.OperatorID, island.Name, island.ID) {
			c.JSON(http.StatusConflict, gin.H{"error": "island name already in use"})
			return
		}

		db.Create(&island)
		c.JSON(http.StatusOK, island)
	}
}

func modifyIsland(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var island types.Island
		if err := c.ShouldBindJSON(&island); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		island.OperatorID = c.Param("operatorid")
		if nameTaken(db, &types.Island{}, island.OperatorID, island.Name, island.ID) {
			c.JSON(http.StatusConflict, gin.H{"error": "island name already in use"})
			return
		}

		db.Save(&island)
		c.Status(http.StatusOK)
	}
}

func deleteIsland(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		db.Where("id = ? AND operator_id = ?", c.Param("islandid"), c.Param("operatorid")).Delete(&types.Island{})
		c.Status(http.StatusOK)
	}
}
