package auth

import (
	"context"

	"team-analysis/standup/internal/constants"
	"team-analysis/standup/internal/db/repositories"
)

// Authorizer centralizes the role checks that guard privileged operations.
// Admin is a chat-platform role carried on the claims; PO and team-member are
// roster roles looked up in the store.
type Authorizer struct {
	adminRoleID string
	users       *repositories.UserRepository
}

func NewAuthorizer(adminRoleID string, users *repositories.UserRepository) *Authorizer {
	return &Authorizer{adminRoleID: adminRoleID, users: users}
}

// IsAdmin reports whether the claims carry the configured admin role id.
func (a *Authorizer) IsAdmin(claims UserClaims) bool {
	if claims == nil || a.adminRoleID == "" || a.adminRoleID == "0" {
		return false
	}
	for _, id := range claims.RoleIDs() {
		if id == a.adminRoleID {
			return true
		}
	}
	return false
}

// IsPO reports whether the user is registered as a product owner.
func (a *Authorizer) IsPO(ctx context.Context, userID string) bool {
	isPO, err := a.users.CheckIsPO(ctx, userID)
	return err == nil && isPO
}

// IsTeamMember reports whether the user is registered as a team member.
func (a *Authorizer) IsTeamMember(ctx context.Context, userID string) bool {
	user, err := a.users.FindByID(ctx, userID)
	return err == nil && user != nil && user.Role == constants.RoleTeamMember
}

// CanEscalate reports whether the claims may trigger an on-demand
// escalation: admins and product owners only.
func (a *Authorizer) CanEscalate(ctx context.Context, claims UserClaims) bool {
	if claims == nil {
		return false
	}
	return a.IsAdmin(claims) || a.IsPO(ctx, claims.UserID())
}
