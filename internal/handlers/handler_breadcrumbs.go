package handlers

import (
	"errors"
	"net/http"
	"objectviewer/internal/breadcrumbs"
	"objectviewer/internal/middlewares"

	"github.com/go-chi/chi/v5"
)

func GETBreadcrumbsHandler(ctx *middlewares.AppContext) {
	ctx.WriteJSON(http.StatusOK, ctx.WebSession.Breadcrumbs(ctx).List())
}

func POSTBreadcrumbHandler(ctx *middlewares.AppContext) {
	var b breadcrumbs.Bookmark
	if err := decodeJSON(ctx, &b); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	if err := ctx.WebSession.Visit(ctx, b); err != nil {
		if errors.Is(err, breadcrumbs.ErrMissingOID) {
			ctx.SetJSONError(http.StatusBadRequest, err.Error())
			return
		}
		ctx.SetInternalError("Failed to record visit", err)
		return
	}

	ctx.WriteJSON(http.StatusOK, ctx.WebSession.Breadcrumbs(ctx).List())
}

func DELETEBreadcrumbHandler(ctx *middlewares.AppContext) {
	oid := chi.URLParam(ctx.Request, "oid")
	if !ctx.WebSession.RemoveBreadcrumb(ctx, oid) {
		ctx.SetJSONError(http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}

	ctx.SetJSONStatus(http.StatusOK, "OK")
}
