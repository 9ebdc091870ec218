package server

import (
	"net/http"

	"github.com/bagdasarian/role-membership-service/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /role/all", h.GetAllRoles)
	mux.HandleFunc("GET /role/default", h.GetDefaultRole)
	mux.HandleFunc("GET /role/{uid}", h.GetRole)
	mux.HandleFunc("POST /role", h.CreateRole)
	mux.HandleFunc("PUT /role/set-default/{uid}", h.SetDefaultRole)
	mux.HandleFunc("PUT /role/{uid}", h.UpdateRole)
	mux.HandleFunc("DELETE /role/{uid}", h.DeleteRole)

	mux.HandleFunc("GET /membership/all", h.GetAllMemberships)
	mux.HandleFunc("GET /membership/role-of-membership/{uid}", h.GetRoleOfMembership)
	mux.HandleFunc("GET /membership/by-role/{roleUid}", h.GetMembershipsByRole)
	mux.HandleFunc("GET /membership/{uid}", h.GetMembership)
	mux.HandleFunc("POST /membership", h.CreateMembership)
	mux.HandleFunc("DELETE /membership/{uid}", h.DeleteMembership)

	mux.HandleFunc("GET /stats", h.GetStats)
	mux.HandleFunc("GET /health", h.Health)
}
