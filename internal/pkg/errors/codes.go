package errors

import "net/http"

const (
	CodeUpstreamUnavailable       = "UPSTREAM_UNAVAILABLE"
	CodeUpstreamMalformedResponse = "UPSTREAM_MALFORMED_RESPONSE"
	CodeMalformedUpstreamRecord   = "MALFORMED_UPSTREAM_RECORD"
	CodeAmbiguousLocationInput    = "AMBIGUOUS_LOCATION_INPUT"
	CodeInvalidPlannerLocation    = "INVALID_PLANNER_LOCATION"
	CodeInvalidRequest            = "INVALID_REQUEST"
	CodeNotFound                  = "NOT_FOUND"
	CodeInternalServer            = "INTERNAL_SERVER_ERROR"
)

var (
	ErrUpstreamUnavailable = New(
		CodeUpstreamUnavailable,
		"Upstream transit API is unavailable",
		http.StatusBadGateway,
	)

	ErrUpstreamMalformedResponse = New(
		CodeUpstreamMalformedResponse,
		"Upstream transit API returned a malformed response",
		http.StatusBadGateway,
	)

	ErrMalformedUpstreamRecord = New(
		CodeMalformedUpstreamRecord,
		"Upstream record is missing a required field",
		http.StatusBadGateway,
	)

	ErrAmbiguousLocationInput = New(
		CodeAmbiguousLocationInput,
		"Location must have either utmLocation or geoLocation",
		http.StatusBadRequest,
	)

	ErrInvalidPlannerLocation = New(
		CodeInvalidPlannerLocation,
		"Planner location must have one of geo, utm, stop or area",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// UpstreamUnavailable - сетевая ошибка или не-2xx ответ upstream API
func UpstreamUnavailable(url string, status int, cause error) *AppError {
	return ErrUpstreamUnavailable.WithDetails(map[string]interface{}{
		"url":    url,
		"status": status,
	}).Wrap(cause)
}

// UpstreamMalformedResponse - тело ответа не является валидным JSON
func UpstreamMalformedResponse(url string, cause error) *AppError {
	return ErrUpstreamMalformedResponse.WithDetails(map[string]interface{}{
		"url": url,
	}).Wrap(cause)
}

// MalformedRecord - в записи upstream отсутствует обязательное поле
func MalformedRecord(record, field string) *AppError {
	return ErrMalformedUpstreamRecord.WithDetails(map[string]interface{}{
		"record": record,
		"field":  field,
	})
}

// InvalidRequest - ошибка валидации входных параметров
func InvalidRequest(details map[string]interface{}) *AppError {
	return ErrInvalidRequest.WithDetails(details)
}
