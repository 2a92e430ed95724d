package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func queryBool(c *gin.Context, key string) (bool, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

func queryInt(c *gin.Context, key string) (int, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
