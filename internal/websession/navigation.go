package websession

import (
	"context"
	"objectviewer/internal/breadcrumbs"
)

// Breadcrumbs returns the trail of this session, creating it on first use.
func (s *SessionManager) Breadcrumbs(ctx context.Context) *breadcrumbs.BreadcrumbModel {
	if model, ok := s.Get(ctx, string(SessionKeyBreadcrumbs)).(*breadcrumbs.BreadcrumbModel); ok {
		return model
	}

	model := breadcrumbs.NewBreadcrumbModel(s.breadcrumbs.MaxBreadcrumbs)
	s.Put(ctx, string(SessionKeyBreadcrumbs), model)
	return model
}

// Bookmarks returns the bookmarked pages of this session, creating them on
// first use.
func (s *SessionManager) Bookmarks(ctx context.Context) *breadcrumbs.BookmarkedPagesModel {
	if model, ok := s.Get(ctx, string(SessionKeyBookmarks)).(*breadcrumbs.BookmarkedPagesModel); ok {
		return model
	}

	model := breadcrumbs.NewBookmarkedPagesModel(s.breadcrumbs.MaxBookmarks)
	s.Put(ctx, string(SessionKeyBookmarks), model)
	return model
}

func (s *SessionManager) Visit(ctx context.Context, b breadcrumbs.Bookmark) error {
	model := s.Breadcrumbs(ctx)
	if err := model.Visited(b); err != nil {
		return err
	}
	s.Put(ctx, string(SessionKeyBreadcrumbs), model)
	return nil
}

func (s *SessionManager) RemoveBreadcrumb(ctx context.Context, oid string) bool {
	model := s.Breadcrumbs(ctx)
	if !model.Remove(oid) {
		return false
	}
	s.Put(ctx, string(SessionKeyBreadcrumbs), model)
	return true
}

func (s *SessionManager) BookmarkPage(ctx context.Context, b breadcrumbs.Bookmark) error {
	model := s.Bookmarks(ctx)
	if err := model.Bookmark(b); err != nil {
		return err
	}
	s.Put(ctx, string(SessionKeyBookmarks), model)
	return nil
}

func (s *SessionManager) RemoveBookmark(ctx context.Context, oid string) bool {
	model := s.Bookmarks(ctx)
	if !model.Remove(oid) {
		return false
	}
	s.Put(ctx, string(SessionKeyBookmarks), model)
	return true
}

func (s *SessionManager) ClearBookmarks(ctx context.Context) {
	model := s.Bookmarks(ctx)
	model.Clear()
	s.Put(ctx, string(SessionKeyBookmarks), model)
}
