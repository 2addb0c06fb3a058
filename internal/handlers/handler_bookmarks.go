package handlers

import (
	"errors"
	"net/http"
	"objectviewer/internal/breadcrumbs"
	"objectviewer/internal/middlewares"

	"github.com/go-chi/chi/v5"
)

func GETBookmarksHandler(ctx *middlewares.AppContext) {
	ctx.WriteJSON(http.StatusOK, ctx.WebSession.Bookmarks(ctx).Tree())
}

func POSTBookmarkHandler(ctx *middlewares.AppContext) {
	var b breadcrumbs.Bookmark
	if err := decodeJSON(ctx, &b); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	if err := ctx.WebSession.BookmarkPage(ctx, b); err != nil {
		if errors.Is(err, breadcrumbs.ErrMissingOID) {
			ctx.SetJSONError(http.StatusBadRequest, err.Error())
			return
		}
		ctx.SetInternalError("Failed to bookmark page", err)
		return
	}

	ctx.WriteJSON(http.StatusCreated, ctx.WebSession.Bookmarks(ctx).Tree())
}

func DELETEBookmarkHandler(ctx *middlewares.AppContext) {
	oid := chi.URLParam(ctx.Request, "oid")
	if !ctx.WebSession.RemoveBookmark(ctx, oid) {
		ctx.SetJSONError(http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}

	ctx.SetJSONStatus(http.StatusOK, "OK")
}

func DELETEBookmarksHandler(ctx *middlewares.AppContext) {
	ctx.WebSession.ClearBookmarks(ctx)
	ctx.SetJSONStatus(http.StatusOK, "OK")
}
