package service

import (
	"slices"

	"github.com/shenikar/rescue_coordination_system/internal/apperror"
	"github.com/shenikar/rescue_coordination_system/internal/models"
)

// Capability is an operation class checked once at the service boundary.
type Capability string

const (
	CapCreateRescueForm Capability = "create rescue form"
	CapUpdateStatus     Capability = "update rescue status"
	CapManageReports    Capability = "manage post-rescue reports"
	CapAdminister       Capability = "administer reports"
)

var capabilityRoles = map[Capability][]models.Role{
	CapCreateRescueForm: {models.RoleDispatcher},
	CapUpdateStatus:     {models.RoleDispatcher, models.RoleAdmin},
	CapManageReports:    {models.RoleDispatcher, models.RoleAdmin},
	CapAdminister:       {models.RoleAdmin},
}

var forbiddenMessages = map[Capability]string{
	CapCreateRescueForm: "Only a dispatcher can create a rescue form",
	CapUpdateStatus:     "Only a dispatcher or admin can update rescue status",
	CapManageReports:    "Only a dispatcher or admin can manage post-rescue reports",
	CapAdminister:       "Only an admin can perform this action",
}

// Allowed reports whether role holds capability.
func Allowed(role models.Role, capability Capability) bool {
	return slices.Contains(capabilityRoles[capability], role)
}

func authorize(actor models.Actor, capability Capability) error {
	if Allowed(actor.Role, capability) {
		return nil
	}
	return apperror.Forbidden(forbiddenMessages[capability])
}
