package cookie

import "github.com/gin-gonic/gin"

// AccessTokenCookieName is set by the identity provider for browser sessions
// of the staff console.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
