package utils

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/adilrabid/ppcp-checkout-api/models"
	"github.com/companieshouse/chs.go/log"
)

// WriteJSONWithStatus writes the interface as a json string with the supplied status.
func WriteJSONWithStatus(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error writing response: %v", err))
	}
}

// WriteAjaxResponse writes a button-callback response envelope. The contract
// with the storefront script is "always 200, inspect the success flag", so
// failures are carried in the envelope rather than the status code.
func WriteAjaxResponse(w http.ResponseWriter, r *http.Request, resp models.AjaxResponse) {
	WriteJSONWithStatus(w, r, resp, http.StatusOK)
}

// WriteAjaxError writes a failed envelope with the supplied message.
func WriteAjaxError(w http.ResponseWriter, r *http.Request, errMsg string) {
	WriteAjaxResponse(w, r, models.AjaxResponse{Success: false, ErrMsg: errMsg})
}

// RequestIP returns the client address of the request, preferring the first
// X-Forwarded-For hop when the service sits behind a proxy.
func RequestIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ip, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(ip)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
