package httpx

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UUIDParam - path-параметр в канонической форме UUID; false, если это не UUID.
func UUIDParam(c *gin.Context, name string) (string, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// QueryTrimmed - query-параметр без пробелов по краям.
func QueryTrimmed(c *gin.Context, key string) string {
	return strings.TrimSpace(c.Query(key))
}

// QueryEnum - значение из allowed (без учёта регистра); пустая строка, если параметр не задан.
// false, если значение задано, но не из списка.
func QueryEnum(c *gin.Context, key string, allowed ...string) (string, bool) {
	v := QueryTrimmed(c, key)
	if v == "" {
		return "", true
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a, true
		}
	}
	return "", false
}
