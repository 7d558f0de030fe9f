package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"volunteer-connect/internal/apperror"
)

var statusByKind = map[apperror.Kind]int{
	apperror.KindValidation:     http.StatusBadRequest,
	apperror.KindConflict:       http.StatusBadRequest,
	apperror.KindNotFound:       http.StatusNotFound,
	apperror.KindAuthentication: http.StatusUnauthorized,
	apperror.KindStore:          http.StatusInternalServerError,
}

// respondError writes err as {"error", "kind", "field"}. Anything that is not
// an *apperror.Error is reported as a store failure without its detail.
func respondError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	var ae *apperror.Error
	if !errors.As(err, &ae) {
		ae = apperror.Store(err)
	}

	body := gin.H{
		"error": ae.Message,
		"kind":  kind,
	}
	if ae.Field != "" {
		body["field"] = ae.Field
	}
	c.JSON(status, body)
}

// bindJSON decodes the request body into dst. An empty body is reported as
// "No data provided"; type mismatches name the offending field.
func bindJSON(c *gin.Context, dst interface{}) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return apperror.Validation("", "No data provided")
	case errors.As(err, &typeErr):
		return apperror.Validation(typeErr.Field, "Invalid value for "+typeErr.Field)
	default:
		return apperror.Validation("", "Invalid JSON body")
	}
}

// pathID parses the :id route parameter
func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperror.Validation("id", "Invalid ID")
	}
	return uint(id), nil
}

// queryID parses an optional numeric query filter; nil means not supplied
func queryID(c *gin.Context, key string) (*uint, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, apperror.Validation(key, "Invalid "+key)
	}
	v := uint(id)
	return &v, nil
}

func deleted(c *gin.Context, entity string) {
	c.JSON(http.StatusOK, gin.H{"message": entity + " deleted successfully"})
}
