package controllers

import "github.com/zaqqye/facetrack_backend/internal/models"

var allowedRoles = map[string]struct{}{
	models.RoleAdmin:    {},
	models.RoleOperator: {},
}

func IsValidRole(role string) bool {
	_, ok := allowedRoles[role]
	return ok
}
