package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/pagekit"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagekit.PageService = (*PageService)(nil)

// PageService implements pagekit.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

const pageColumns = "id, title, status, meta, sections, created_at, updated_at"

// CreatePage persists a new page. A page without an ID is assigned a fresh
// UUID, and zero timestamps are set to the current time.
func (s *PageService) CreatePage(ctx context.Context, page *pagekit.Page) error {
	if page == nil {
		return pagekit.Errorf(pagekit.EINVALID, "page required")
	}

	if page.ID == "" {
		page.ID = uuid.New().String()
	}
	if page.CreatedAt.IsZero() {
		page.CreatedAt = s.db.Now()
	}
	if page.UpdatedAt.IsZero() {
		page.UpdatedAt = page.CreatedAt
	}

	if err := page.Validate(); err != nil {
		return err
	}

	meta, sections, err := marshalPage(page)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, title, status, source_url, confidence, meta, sections, content_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, page.ID, page.Title, string(page.Status), page.Meta.SourceURL, string(page.Meta.Confidence),
		string(meta), string(sections), hashContent(sections),
		formatTime(page.CreatedAt), formatTime(page.UpdatedAt))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return pagekit.Errorf(pagekit.ECONFLICT, "page %q already exists", page.ID)
	}

	return nil
}

// FindPageByID retrieves a page by ID.
func (s *PageService) FindPageByID(ctx context.Context, id string) (*pagekit.Page, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE id = ?", id)

	page, err := scanPage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pagekit.Errorf(pagekit.ENOTFOUND, "page %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}

// FindPages retrieves pages matching the filter, newest first.
func (s *PageService) FindPages(ctx context.Context, filter pagekit.PageFilter) ([]*pagekit.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + pageColumns + " FROM pages WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*pagekit.Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	return pages, rows.Err()
}

// UpdatePage updates an existing page. UpdatedAt only moves when something
// actually changed; section changes are detected by content hash.
func (s *PageService) UpdatePage(ctx context.Context, id string, upd pagekit.PageUpdate) (*pagekit.Page, error) {
	page, err := s.FindPageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_, before, err := marshalPage(page)
	if err != nil {
		return nil, err
	}

	changed := false
	if upd.Title != nil {
		title := pagekit.TruncateWithEllipsis(pagekit.Clean(*upd.Title), pagekit.MaxTitleLen)
		if title == "" {
			return nil, pagekit.Errorf(pagekit.EINVALID, "title required")
		}
		changed = changed || title != page.Title
		page.Title = title
	}
	if upd.Status != nil {
		changed = changed || *upd.Status != page.Status
		page.Status = *upd.Status
	}
	if upd.Sections != nil {
		page.Sections = *upd.Sections
	}

	if err := page.Validate(); err != nil {
		return nil, err
	}

	meta, sections, err := marshalPage(page)
	if err != nil {
		return nil, err
	}
	hash := hashContent(sections)
	changed = changed || hash != hashContent(before)
	if !changed {
		return page, nil
	}

	page.Touch(s.db.Now())

	if _, err := s.db.ExecContext(ctx, `
		UPDATE pages
		SET title = ?, status = ?, meta = ?, sections = ?, content_hash = ?, updated_at = ?
		WHERE id = ?
	`, page.Title, string(page.Status), string(meta), string(sections), hash,
		formatTime(page.UpdatedAt), id); err != nil {
		return nil, err
	}

	return page, nil
}

// DeletePage permanently removes a page.
func (s *PageService) DeletePage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagekit.Errorf(pagekit.ENOTFOUND, "page %q not found", id)
	}

	return nil
}

// marshalPage encodes the JSON columns of page.
func marshalPage(page *pagekit.Page) (meta, sections []byte, err error) {
	if meta, err = json.Marshal(page.Meta); err != nil {
		return nil, nil, fmt.Errorf("failed to encode meta: %w", err)
	}
	list := page.Sections
	if list == nil {
		list = []pagekit.Section{}
	}
	if sections, err = json.Marshal(list); err != nil {
		return nil, nil, fmt.Errorf("failed to encode sections: %w", err)
	}
	return meta, sections, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPage(row scanner) (*pagekit.Page, error) {
	var page pagekit.Page
	var status, meta, sections, createdAt, updatedAt string

	if err := row.Scan(&page.ID, &page.Title, &status, &meta, &sections, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	page.Status = pagekit.Status(status)

	if err := json.Unmarshal([]byte(meta), &page.Meta); err != nil {
		return nil, fmt.Errorf("failed to decode meta: %w", err)
	}
	if err := json.Unmarshal([]byte(sections), &page.Sections); err != nil {
		return nil, fmt.Errorf("failed to decode sections: %w", err)
	}

	var err error
	if page.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if page.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &page, nil
}
