package handler

import "net/http"

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	totals, err := h.statsService.GetTotals(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	roleStats, err := h.statsService.GetRoleMembershipStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := StatsResponse{
		Totals: TotalsResponse{
			Roles:       totals.Roles,
			Memberships: totals.Memberships,
		},
		Roles: make([]RoleStatResponse, 0, len(roleStats)),
	}
	for _, stat := range roleStats {
		response.Roles = append(response.Roles, RoleStatResponse{
			RoleUID:         stat.RoleUID,
			RoleName:        stat.RoleName,
			MembershipCount: stat.MembershipCount,
		})
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
