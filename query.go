package patternsapi

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/fwbench/patterns-api/serializer"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// requestSerializer selects the response serializer from the request's
// format parameter. Selection happens once, at this boundary: the format
// string is parsed into the closed format set or the request fails.
// An absent parameter means JSON.
func requestSerializer(q url.Values) (serializer.Serializer, error) {
	format := q.Get("format")
	if format == "" {
		format = "json"
	}
	return serializer.New(format)
}

// parseLimit reads the list page size. Empty means the default; the value
// must be a positive integer and is capped.
func parseLimit(q url.Values) (int, error) {
	raw := q.Get("limit")
	if raw == "" {
		return defaultListLimit, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return 0, &QueryError{Msg: "limit must be a positive integer"}
	}
	if v > maxListLimit {
		v = maxListLimit
	}
	return v, nil
}
