// Copyright (c) 2026 Oshidora. All rights reserved.

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction so handlers
never import chi directly.
*/
package requestutil

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nakatsuka-k/oshidora-sub000/pkg/query"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
QueryList reads a comma-separated query parameter as a trimmed list.

Returns nil when the parameter is absent or blank.
*/
func QueryList(request *http.Request, name string) []string {
	return query.StringSlice(request.URL.Query().Get(name))
}

/*
QueryString reads a single trimmed query parameter, falling back to def
when it is absent or blank.
*/
func QueryString(request *http.Request, name, def string) string {
	value := strings.TrimSpace(request.URL.Query().Get(name))
	if value == "" {
		return def
	}
	return value
}
