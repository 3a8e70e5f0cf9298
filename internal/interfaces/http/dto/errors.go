package dto

import "net/http"

// DomainCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed map to 500.
var DomainCodeHTTPStatus = map[string]int{
	"NOT_FOUND":            http.StatusNotFound,
	"HOLDER_NOT_FOUND":     http.StatusNotFound,
	"ACCOUNT_NOT_FOUND":    http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"ACCOUNT_BUSY":         http.StatusConflict,
	"ACCOUNT_NOT_EMPTY":    http.StatusConflict,
	"CLIENT_HAS_ACCOUNTS":  http.StatusConflict,
	"HOLDER_MISMATCH":      http.StatusConflict,
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_AMOUNT":       http.StatusUnprocessableEntity,
	"INSUFFICIENT_BALANCE": http.StatusUnprocessableEntity,
	"UNAUTHORIZED":         http.StatusUnauthorized,
	"IDENTIFIER_EXHAUSTED": http.StatusServiceUnavailable,
	"STORE_MISCONFIGURED":  http.StatusInternalServerError,
}

// StatusForCode returns the HTTP status for a domain error code
func StatusForCode(code string) int {
	if status, ok := DomainCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
