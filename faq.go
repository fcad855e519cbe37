package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/zeroshade/ferryapi/types"
)

func addFaqRoutes(router *gin.RouterGroup, db *gorm.DB) {
	router.GET("/faq/categories", GetFaqCategories(db))
	router.PUT("/faq/categories", checkJWT("manage:faqs"), logActionMiddle(db), SaveFaqCategory(db))
	router.DELETE("/faq/categories/:catid", checkJWT("manage:faqs"), logActionMiddle(db), DeleteFaqCategory(db))

	router.GET("/faqs", GetFaqs(db))
	router.PUT("/faqs", checkJWT("manage:faqs"), logActionMiddle(db), SaveFaq(db))
	router.DELETE("/faqs/:faqid", checkJWT("manage:faqs"), logActionMiddle(db), DeleteFaq(db))
}

func GetFaqCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cats []types.FAQCategory
		db.Order("sort_order asc, id asc").Find(&cats, "operator_id = ?", c.Param("operatorid"))
		c.JSON(http.StatusOK, cats)
	}
}

func SaveFaqCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cat types.FAQCategory
		if err := c.ShouldBindJSON(&cat); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cat.OperatorID = c.Param("operatorid")
		db.Save(&cat)
		c.JSON(http.StatusOK, cat)
	}
}

func DeleteFaqCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		count := 0
		db.Model(&types.FAQ{}).
			Where("operator_id = ? AND category_id = ?", c.Param("operatorid"), c.Param("catid")).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "category still has entries"})
			return
		}

		db.Where("id = ? AND operator_id = ?", c.Param("catid"), c.Param("operatorid")).Delete(&types.FAQCategory{})
		c.Status(http.StatusOK)
	}
}

// GetFaqs lists entries ordered by category then sort order. Without the
// admin flag only published entries come back.
func GetFaqs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Order("category_id asc, sort_order asc, id asc").
			Where("operator_id = ?", c.Param("operatorid"))
		if c.Query("all") == "" {
			q = q.Where("published = ?", true)
		}
		if cat := c.Query("category"); cat != "" {
			q = q.Where("category_id = ?", cat)
		}

		var faqs []types.FAQ
		q.Find(&faqs)
		c.JSON(http.StatusOK, faqs)
	}
}

func SaveFaq(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var faq types.FAQ
		if err := c.ShouldBindJSON(&faq); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		faq.OperatorID = c.Param("operatorid")
		db.Save(&faq)
		c.JSON(http.StatusOK, faq)
	}
}

func DeleteFaq(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		db.Where("id = ? AND operator_id = ?", c.Param("faqid"), c.Param("operatorid")).Delete(&types.FAQ{})
		c.Status(http.StatusOK)
	}
}
