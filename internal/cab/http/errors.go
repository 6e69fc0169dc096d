package http

import (
	"errors"
	"net/http"

	"github.com/akshat7606/QuickC/pkg/cabsdk"
	"github.com/akshat7606/QuickC/pkg/httpx"
)

// writeDecodeError answers a body that failed httpx.DecodeJSON.
func writeDecodeError(w http.ResponseWriter, err error) {
	var verr *httpx.ValidationError
	if errors.As(err, &verr) {
		details := make(map[string]string, len(verr.Fields))
		for _, f := range verr.Fields {
			details[f.Field] = f.Rule
		}
		httpx.WriteJSON(w, http.StatusBadRequest, cabsdk.ValidationErrorResponse{
			Error:            cabsdk.ErrorCodeValidation,
			ErrorDescription: verr.Error(),
			Details:          details,
		})
		return
	}
	httpx.WriteError(w, http.StatusBadRequest, cabsdk.ErrorCodeInvalidRequest, err.Error())
}

func writeServerError(w http.ResponseWriter, description string) {
	httpx.WriteError(w, http.StatusInternalServerError, cabsdk.ErrorCodeServerError, description)
}
