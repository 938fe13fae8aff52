package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed    = "method_not_allowed"
	codeNotFound            = "not_found"
	codeInvalidRequestBody  = "invalid_request_body"
	codeInvalidID           = "invalid_id"
	codeInvalidUrgency      = "invalid_urgency"
	codeBloodTypeRequired   = "blood_type_required"
	codeLocationRequired    = "location_required"
	codeDonorNameRequired   = "donor_name_required"
	codeCaseNotFound        = "case_not_found"
	codeDonationNotFound    = "donation_not_found"
	codeSlotNotOffered      = "slot_not_offered"
	codeBookingDisabled     = "booking_disabled"
	codeClinicClosed        = "clinic_closed"
	codeNoSlots             = "no_slots"
	codeInvalidTransition   = "invalid_status_transition"
	codeAuthRequired        = "auth_required"
	codeForbidden           = "forbidden"
	codeBookingNotCompleted = "booking_not_completed"
	codeInternalError       = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}
