package handlers

import (
	"strconv"
	"strings"

	"katwate/models"

	"github.com/gin-gonic/gin"
)

func queryBool(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(c.Query(key)))
	return err == nil && v
}

// queryInt returns the integer value of key, or fallback when it is missing
// or malformed.
func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return fallback
	}
	return v
}

func queryPackage(c *gin.Context, key string, fallback models.PackageType) models.PackageType {
	pkg := models.PackageType(strings.ToLower(strings.TrimSpace(c.Query(key))))
	if pkg == "" {
		return fallback
	}
	return pkg
}
