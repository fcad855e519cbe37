package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/jinzhu/gorm/dialects/postgres"
	"github.com/zeroshade/ferryapi/types"
)

func addLogRoutes(router *gin.RouterGroup, db *gorm.DB) {
	router.GET("/logs", checkJWT("read:logs"), GetLogActions(db))
}

// logActionMiddle records the payload of every mutating admin call so a
// change can be traced back to a team member.
func logActionMiddle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload json.RawMessage
		if c.Request.Body != nil {
			body, err := ioutil.ReadAll(c.Request.Body)
			if err == nil {
				payload = json.RawMessage(body)
				c.Request.Body = ioutil.NopCloser(bytes.NewReader(body))
			}
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		db.Create(&types.LogAction{
			OperatorID: c.Param("operatorid"),
			UserID:     c.GetString("user_id"),
			Method:     c.Request.Method,
			Url:        c.Request.URL.Path,
			Payload:    postgres.Jsonb{RawMessage: payload},
		})
	}
}

func GetLogActions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
		if err != nil || limit <= 0 {
			limit = 100
		}

		var logs []types.LogAction
		db.Order("created_at desc").Limit(limit).
			Find(&logs, "operator_id = ?", c.Param("operatorid"))
		c.JSON(http.StatusOK, logs)
	}
}
