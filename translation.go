package main

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/zeroshade/ferryapi/types"
)

func addTranslationRoutes(router *gin.RouterGroup, db *gorm.DB) {
	router.GET("/translations", GetTranslations(db))
	router.PUT("/translations", checkJWT("manage:translations"), logActionMiddle(db), SaveTranslation(db))
	router.DELETE("/translations", checkJWT("manage:translations"), logActionMiddle(db), DeleteTranslation(db))
	router.GET("/translations/share/*key", ShareTranslation(db))
}

func GetTranslations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Order("key asc, locale asc").Where("operator_id = ?", c.Param("operatorid"))
		if locale := c.Query("locale"); locale != "" {
			q = q.Where("locale = ?", locale)
		}
		if prefix := c.Query("prefix"); prefix != "" {
			q = q.Where("key LIKE ?", prefix+"%")
		}

		var trs []types.Translation
		q.Find(&trs)
		c.JSON(http.StatusOK, trs)
	}
}

// SaveTranslation upserts on (operator, key, locale) so repeated edits from
// the admin client never create duplicates.
func SaveTranslation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tr types.Translation
		if err := c.ShouldBindJSON(&tr); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		tr.OperatorID = c.Param("operatorid")

		var existing types.Translation
		if db.Find(&existing, "operator_id = ? AND key = ? AND locale = ?",
			tr.OperatorID, tr.Key, tr.Locale).RecordNotFound() {
			db.Create(&tr)
		} else {
			db.Model(&existing).Update("value", tr.Value)
		}
		c.JSON(http.StatusOK, tr)
	}
}

func DeleteTranslation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Query("key")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
			return
		}

		q := db.Where("operator_id = ? AND key = ?", c.Param("operatorid"), key)
		if locale := c.Query("locale"); locale != "" {
			q = q.Where("locale = ?", locale)
		}
		q.Delete(&types.Translation{})
		c.Status(http.StatusOK)
	}
}

// shareBody renders a translation key with all its locale values as plain
// text, the payload the mobile client drops into the platform share sheet.
func shareBody(key string, trs []types.Translation) string {
	sort.Slice(trs, func(i, j int) bool { return trs[i].Locale < trs[j].Locale })

	var b strings.Builder
	fmt.Fprintf(&b, "Translation key: %s\n", key)
	for _, tr := range trs {
		fmt.Fprintf(&b, "[%s] %s\n", tr.Locale, tr.Value)
	}
	return b.String()
}

func ShareTranslation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimPrefix(c.Param("key"), "/")

		var trs []types.Translation
		db.Find(&trs, "operator_id = ? AND key = ?", c.Param("operatorid"), key)
		if len(trs) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "translation not found"})
			return
		}

		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(shareBody(key, trs)))
	}
}
