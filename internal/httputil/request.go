package httputil

import (
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to data and validates it.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		if v := bindError(err, LocationBody); v != nil {
			return v
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// BindQuery binds the query string of the request to data and validates it.
func BindQuery(c *gin.Context, data any) error {
	if err := c.ShouldBindQuery(data); err != nil {
		if v := bindError(err, LocationQuery); v != nil {
			return v
		}

		// Values that cannot be converted to the field type
		return Invalid(LocationQuery, "", c.Request.URL.RawQuery, "the query string contains unparseable data")
	}

	return nil
}

// UUIDFromParam parses the path parameter with the given name as resource ID.
//
// This is needed because gin does not support binding path parameters to uuid.UUID.
func UUIDFromParam(c *gin.Context, name string) (uuid.UUID, error) {
	s := c.Param(name)

	u, err := uuid.Parse(s)
	if err != nil || u == uuid.Nil {
		return uuid.Nil, Invalid(LocationParams, name, s, "the ID is not valid")
	}

	return u, nil
}

// RequestHost returns the scheme and host the client used to reach the API.
//
// The scheme defaults to http and is https if the x-forwarded-proto header
// says so. If a reverse proxy sets x-forwarded-host, it is used together
// with x-forwarded-prefix, which defaults to "/api".
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost

		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")

		if forwardedPrefix == "" {
			forwardedPrefix = "/api"
		}
	}

	return scheme + "://" + host + forwardedPrefix
}
