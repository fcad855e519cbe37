package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

func addAnnouncementRoutes(router *gin.RouterGroup, db *gorm.DB) {
	router.GET("/announcements", GetAnnouncements(db))
	router.PUT("/announcements", checkJWT("manage:config"), logActionMiddle(db), SaveAnnouncement(db))
	router.DELETE("/announcements/:id", checkJWT("manage:config"), logActionMiddle(db), DeleteAnnouncement(db))
}

// Announcement is a dated operator notice shown to passengers: delays,
// weather warnings, schedule changes.
type Announcement struct {
	CreatedAt  *time.Time `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt"`
	DeletedAt  *time.Time `json:"deletedAt"`
	ID         uint       `json:"id" gorm:"primary_key"`
	OperatorID string     `json:"-" gorm:"index:operator"`
	Content    string     `json:"content"`
}

func GetAnnouncements(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ann []Announcement
		db.Order("created_at desc").Find(&ann, "operator_id = ?", c.Param("operatorid"))

		c.JSON(http.StatusOK, ann)
	}
}

func SaveAnnouncement(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ann Announcement
		if err := c.ShouldBindJSON(&ann); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ann.OperatorID = c.Param("operatorid")
		db.Save(&ann)
		c.Status(http.StatusOK)
	}
}

func DeleteAnnouncement(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		db.Delete(&Announcement{}, "operator_id = ? AND id = ?", c.Param("operatorid"), c.Param("id"))

		c.Status(http.StatusNoContent)
	}
}
