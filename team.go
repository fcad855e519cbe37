package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/zeroshade/ferryapi/internal"
)

var auth0Client *internal.Auth0Client

func init() {
	auth0Client = internal.NewAuth0Client()
}

func addTeamRoutes(router *gin.RouterGroup, db *gorm.DB) {
	router.GET("/team", checkJWT("manage:team"), getTeam())
	router.POST("/team", checkJWT("manage:team"), createMember())
	router.DELETE("/team/:userid", checkJWT("manage:team"), deleteMember())
	router.POST("/team/:userid/passwd", checkJWT("manage:team"), resetPass())
}

func resetPass() gin.HandlerFunc {
	return func(c *gin.Context) {
		type resetReq struct {
			NewPass string `json:"newpass"`
		}

		var r resetReq
		if err := c.ShouldBindJSON(&r); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		auth0Client.ResetPassword(c.Param("userid"), r.NewPass)
		c.Status(http.StatusOK)
	}
}

// getTeam lists operations-team members: global admins plus the staff
// scoped to this operator.
func getTeam() gin.HandlerFunc {
	return func(c *gin.Context) {
		admins := auth0Client.GetUsersByRole("admin")
		staff := auth0Client.GetUsers(fmt.Sprintf(`app_metadata.operator_id:"%s"`, c.Param("operatorid")))

		c.JSON(http.StatusOK, append(admins, staff...))
	}
}

func createMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		var u internal.User
		if err := c.ShouldBindJSON(&u); err != nil {
			log.Println(err.Error())
			c.AbortWithError(http.StatusBadRequest, err)
			return
		}

		if u.AppMetadata == nil {
			u.AppMetadata = make(map[string]json.RawMessage)
		}
		u.AppMetadata["operator_id"] = json.RawMessage([]byte(`"` + c.Param("operatorid") + `"`))
		auth0Client.CreateUser(&u)

		auth0Client.AssignRoles(u.UserID, "crew")
	}
}

func deleteMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth0Client.DeleteUser(c.Param("userid"))
		c.Status(http.StatusOK)
	}
}
