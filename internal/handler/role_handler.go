package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) GetRole(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	role, err := h.roleService.FindByUID(r.Context(), uid)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainRoleToHTTP(role))
}

func (h *Handler) GetAllRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleService.FindAll(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainRolesToHTTP(roles))
}

func (h *Handler) GetDefaultRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.roleService.FindDefault(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainRoleToHTTP(role))
}

func (h *Handler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req RoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, r, badRequestError(err))
		return
	}

	role, err := h.roleService.Create(r.Context(), httpRoleToInput(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, domainRoleToHTTP(role))
}

func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	var req RoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, r, badRequestError(err))
		return
	}

	role, err := h.roleService.Update(r.Context(), httpRoleToInput(req), uid)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainRoleToHTTP(role))
}

func (h *Handler) SetDefaultRole(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	role, err := h.roleService.SetDefault(r.Context(), uid)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainRoleToHTTP(role))
}

func (h *Handler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	if err := h.roleService.Delete(r.Context(), uid); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
