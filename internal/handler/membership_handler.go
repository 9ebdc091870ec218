package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) GetMembership(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	membership, err := h.membershipService.FindByUID(r.Context(), uid)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainMembershipToHTTP(membership))
}

func (h *Handler) GetAllMemberships(w http.ResponseWriter, r *http.Request) {
	memberships, err := h.membershipService.FindAll(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainMembershipsToHTTP(memberships))
}

func (h *Handler) GetRoleOfMembership(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	role, err := h.membershipService.FindRoleOfMembership(r.Context(), uid)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainRoleToHTTP(role))
}

func (h *Handler) GetMembershipsByRole(w http.ResponseWriter, r *http.Request) {
	roleUID := r.PathValue("roleUid")

	memberships, err := h.membershipService.FindMembershipsOfRole(r.Context(), roleUID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainMembershipsToHTTP(memberships))
}

func (h *Handler) CreateMembership(w http.ResponseWriter, r *http.Request) {
	var req MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, r, badRequestError(err))
		return
	}

	membership, err := h.membershipService.Create(r.Context(), httpMembershipToInput(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, domainMembershipToHTTP(membership))
}

func (h *Handler) DeleteMembership(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	if err := h.membershipService.Delete(r.Context(), uid); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
