// internal/middleware/helpers.go
package middleware

import "github.com/gin-gonic/gin"

// MustGetAdminID gets admin ID from context or panics
func MustGetAdminID(c *gin.Context) int64 {
	adminID, exists := GetAdminID(c)
	if !exists {
		panic("admin_id not found in context")
	}
	return adminID
}

// MustGetJTI gets JTI from context or panics
func MustGetJTI(c *gin.Context) string {
	jti, exists := GetJTI(c)
	if !exists {
		panic("jti not found in context")
	}
	return jti
}

// GetEmail gets the staff member's email from context
func GetEmail(c *gin.Context) string {
	email, exists := c.Get("email")
	if !exists {
		return ""
	}

	emailStr, ok := email.(string)
	if !ok {
		return ""
	}

	return emailStr
}

// IsAuthenticated checks if request is authenticated
func IsAuthenticated(c *gin.Context) bool {
	_, exists := c.Get("admin_id")
	return exists
}

// IsAdmin checks if the staff member has CMS access
func IsAdmin(c *gin.Context) bool {
	return HasRole(c, "admin") || HasRole(c, "super_admin")
}

// IsSuperAdmin checks if the staff member is a super admin
func IsSuperAdmin(c *gin.Context) bool {
	return HasRole(c, "super_admin")
}
