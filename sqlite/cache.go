package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/provinv"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ provinv.PageCache = (*PageCache)(nil)

// PageCache implements provinv.PageCache using SQLite, keyed by URL.
// It lets repeated inventory runs skip re-fetching provider pages
// that were already retrieved.
type PageCache struct {
	db *DB
}

// NewPageCache creates a new PageCache.
func NewPageCache(db *DB) *PageCache {
	return &PageCache{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// GetPage returns the cached page for url.
func (c *PageCache) GetPage(ctx context.Context, url string) (*provinv.Page, error) {
	if url == "" {
		return nil, provinv.Errorf(provinv.EINVALID, "page URL required")
	}

	var page provinv.Page
	err := c.db.QueryRowContext(ctx, `
		SELECT url, html, last_modified
		FROM pages
		WHERE url = ?
	`, url).Scan(&page.URL, &page.HTML, &page.LastModified)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, provinv.Errorf(provinv.ENOTFOUND, "page not cached: %s", url)
	}
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// PutPage stores a fetched page, replacing any previous entry for the
// same URL.
func (c *PageCache) PutPage(ctx context.Context, page *provinv.Page) error {
	if page.URL == "" {
		return provinv.Errorf(provinv.EINVALID, "page URL required")
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, html, last_modified, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			html = excluded.html,
			last_modified = excluded.last_modified,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, uuid.New().String(), page.URL, page.HTML, page.LastModified,
		hashContent(page.HTML), time.Now().UTC().Format(time.RFC3339))

	return err
}
