package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/zeroshade/ferryapi/types"
)

func addRouteRoutes(router *gin.RouterGroup, db *gorm.DB) {
	router.GET("/routes", GetRoutes(db))
	router.PUT("/routes", checkJWT("manage:routes"), logActionMiddle(db), SaveRoute(db))
	router.DELETE("/routes/:routeid", checkJWT("manage:routes"), logActionMiddle(db), DeleteRoute(db))
}

// routeSortCols whitelists the sortable columns exposed to clients. Anything
// else falls back to name.
var routeSortCols = map[string]string{
	"name":     "name",
	"fare":     "base_fare",
	"distance": "distance_km",
	"duration": "duration",
}

// routeOrderClause builds a stable ORDER BY: ties on the requested column
// are broken by id so repeated listings never reshuffle.
func routeOrderClause(sortKey, dir string) string {
	col, ok := routeSortCols[sortKey]
	if !ok {
		col = "name"
	}
	if dir != "desc" {
		dir = "asc"
	}
	return col + " " + dir + ", id asc"
}

func validRoute(r *types.Route) (string, bool) {
	if r.OriginID == r.DestID {
		return "origin and destination must differ", false
	}
	if r.BaseFare <= 0 {
		return "base fare must be greater than zero", false
	}
	if r.Status != "" && r.Status != types.RouteActive && r.Status != types.RouteSuspended {
		return "unknown route status", false
	}
	return "", true
}

func GetRoutes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Where("operator_id = ?", c.Param("operatorid")).
			Order(routeOrderClause(c.Query("sort"), c.Query("dir")))

		if search := c.Query("q"); search != "" {
			q = q.Where("name ILIKE ?", "%"+search+"%")
		}
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}

		var routes []types.Route
		q.Find(&routes)
		c.JSON(http.StatusOK, routes)
	}
}

// SaveRoute exports a handler for reading in a route and saving it to the db
func SaveRoute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var inroute types.Route
		if err := c.ShouldBindJSON(&inroute); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if msg, ok := validRoute(&inroute); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		inroute.OperatorID = c.Param("operatorid")
		if nameTaken(db, &types.Route{}, inroute.OperatorID, inroute.Name, inroute.ID) {
			c.JSON(http.StatusConflict, gin.H{"error": "route name already in use"})
			return
		}

		db.Save(&inroute)
		c.JSON(http.StatusOK, inroute)
	}
}

func DeleteRoute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		db.Where("id = ? AND operator_id = ?", c.Param("routeid"), c.Param("operatorid")).Delete(&types.Route{})
		c.Status(http.StatusOK)
	}
}
