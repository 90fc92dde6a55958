package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"team-analysis/standup/internal/auth"
	"team-analysis/standup/internal/constants"
	"team-analysis/standup/internal/db/repositories"
	"team-analysis/standup/internal/models/dtos"
	"team-analysis/standup/internal/models/dtos/responses"
	"team-analysis/standup/internal/models/entities"
	gormModels "team-analysis/standup/internal/models/gorm"
)

// RegisterUserHandler handles POST /api/v1/users, admin only. Registering an
// existing user updates their name and role.
func RegisterUserHandler(users *repositories.UserRepositoryGORM, reader *repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		var req dtos.RegisterUserReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.UserID == "" || req.UserName == "" {
			respondWithError(w, http.StatusBadRequest, "user_id and user_name are required")
			return
		}

		role := constants.Role(req.Role)
		if req.Role == "" {
			role = constants.RoleTeamMember
		}
		if !role.Valid() {
			respondWithError(w, http.StatusBadRequest, "Unknown role")
			return
		}

		created, err := users.Register(r.Context(), req.UserID, req.UserName, role, claims.UserID())
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		registered, err := reader.FindByID(r.Context(), req.UserID)
		if err != nil || registered == nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load registered user")
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		respondWithSuccess(w, status, &responses.RegisterUserRes{Created: created, User: *registered})
	}
}

// RemoveUserHandler handles DELETE /api/v1/users/{user_id}, admin only.
func RemoveUserHandler(users *repositories.UserRepositoryGORM) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := users.Remove(r.Context(), chi.URLParam(r, "user_id")); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithSuccess[struct{}](w, http.StatusOK, nil)
	}
}

// ListUsersHandler handles GET /api/v1/users.
func ListUsersHandler(users *repositories.UserRepositoryGORM) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := users.ListAll(r.Context())
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		roster := make([]entities.User, 0, len(rows))
		for _, row := range rows {
			roster = append(roster, fromGormUser(row))
		}
		respondWithSuccess(w, http.StatusOK, &responses.UsersRes{Users: roster})
	}
}

// SetNicknameHandler handles PUT /api/v1/users/nickname. Users may rename
// themselves; admins may rename anyone.
func SetNicknameHandler(users *repositories.UserRepositoryGORM, authorizer *auth.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		var req dtos.SetNicknameReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		targetID := req.UserID
		if targetID == "" {
			targetID = claims.UserID()
		}
		if targetID != claims.UserID() && !authorizer.IsAdmin(claims) {
			respondWithError(w, http.StatusUnauthorized, "Only admins can rename other users")
			return
		}

		if err := users.SetNickname(r.Context(), targetID, req.Nickname); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithSuccess[struct{}](w, http.StatusOK, nil)
	}
}

func fromGormUser(u gormModels.User) entities.User {
	return entities.User{
		ID:           u.ID,
		UserID:       u.UserID,
		UserName:     u.UserName,
		Nickname:     u.Nickname,
		Role:         u.Role,
		RegisteredAt: u.RegisteredAt,
		RegisteredBy: u.RegisteredBy,
	}
}
