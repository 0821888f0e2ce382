package controller

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
	maxPageSize     = 200
)

// parsePagination reads page and page_size. Every error wraps errBadRequest.
func parsePagination(q url.Values) (page, pageSize int, err error) {
	page, err = queryInt(q, "page", defaultPage, 1, 0)
	if err != nil {
		return 0, 0, err
	}

	pageSize, err = queryInt(q, "page_size", defaultPageSize, 1, maxPageSize)
	if err != nil {
		return 0, 0, err
	}

	return page, pageSize, nil
}

// queryInt parses an optional integer parameter within [lo, hi]; hi of zero means unbounded.
func queryInt(q url.Values, name string, fallback, lo, hi int) (int, error) {
	if !q.Has(name) {
		return fallback, nil
	}

	v, err := strconv.ParseInt(q.Get(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s from query: %w: %w", name, errBadRequest, err)
	}
	if int(v) < lo {
		return 0, fmt.Errorf("invalid %s value [%d]: %w", name, v, errBadRequest)
	}
	if hi > 0 && int(v) > hi {
		return 0, fmt.Errorf("%s [%d] exceeds limit [%d]: %w", name, v, hi, errBadRequest)
	}

	return int(v), nil
}
