package transport

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ExpireRequest handler
// @Summary Expire a pending request
// @Description Called by the expiry consumer; no-op once the request left pending
// @Tags Internal
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} Response
// @Router /internal/v1/requests/{id}/expire [post]
func (s *RestHandler) ExpireRequest(w http.ResponseWriter, r *http.Request) {
	if err := s.RequestApp.Expire(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// RewardRequest handler
// @Summary Credit a completed delivery
// @Description Retries the reward of a completed request whose reward failed; a request is credited once
// @Tags Internal
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} model.DeliveryReward
// @Failure 409 {object} Response
// @Router /internal/v1/requests/{id}/reward [post]
func (s *RestHandler) RewardRequest(w http.ResponseWriter, r *http.Request) {
	res, err := s.GamificationApp.RewardDelivery(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteRequest handler
// @Summary Delete request
// @Tags Internal
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} Response
// @Router /internal/v1/requests/{id} [delete]
func (s *RestHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	if err := s.RequestApp.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// DeleteUser handler
// @Summary Delete user
// @Tags Internal
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} Response
// @Router /internal/v1/users/{id} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.UserApp.DeleteUser(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// Export handler
// @Summary Export all data
// @Tags Internal
// @Produce json
// @Success 200 {object} model.ExportData
// @Router /internal/v1/export [get]
func (s *RestHandler) Export(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.Export(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
