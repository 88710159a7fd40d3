package http

import (
	"net/http"
	"strconv"

	apperrors "arenaku/pkg/errors"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

func ExtractLimitOffset(r *http.Request) (int, int, error) {
	query := r.URL.Query()

	limit := 0
	if s := query.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid limit parameter: " + s)
		}
		limit = v
	}

	offset := 0
	if s := query.Get("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid offset parameter: " + s)
		}
		offset = v
	}

	return NormalizeLimit(limit), NormalizeOffset(offset), nil
}

func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageLimit
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}

func NormalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
