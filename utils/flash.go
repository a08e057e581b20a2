package utils

import "github.com/gin-gonic/gin"

// Flash messages survive exactly one redirect: a short-lived cookie set
// before redirecting, read and cleared by the next page-data request.

const flashMaxAge = 60

func SetFlash(c *gin.Context, key, message string) {
	c.SetCookie("flash_"+key, message, flashMaxAge, "/", "", false, true)
}

// TakeFlash returns the flash value for key and clears it.
func TakeFlash(c *gin.Context, key string) string {
	name := "flash_" + key
	value, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	c.SetCookie(name, "", -1, "/", "", false, true)
	return value
}
