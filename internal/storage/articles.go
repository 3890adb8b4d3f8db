package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hoppe93/PublicationManager/internal/article"
)

// selectArticleFields contains the standard field list for SELECT queries.
const selectArticleFields = `id, status, doi, url, pinboard, title,
	authors_json, journal, volume, issue, pages,
	pub_year, pub_month, pub_day, keywords`

// InsertArticle stores a new article and returns its assigned ID.
func (d *DB) InsertArticle(art article.Article) (int64, error) {
	authorsJSON, err := json.Marshal(art.Authors)
	if err != nil {
		return 0, fmt.Errorf("marshaling authors: %w", err)
	}

	res, err := d.db.Exec(`
		INSERT INTO articles (
			status, doi, url, pinboard, title, authors_json,
			journal, volume, issue, pages,
			pub_year, pub_month, pub_day, keywords
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		int(art.Status), nullable(art.DOI), nullable(art.URL), nullable(art.Pinboard),
		art.Title, string(authorsJSON),
		nullable(art.Journal), nullable(art.Volume), nullable(art.Issue), nullable(art.Pages),
		art.Date.Year, art.Date.Month, art.Date.Day, nullable(art.Keywords),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting article: %w", err)
	}

	return res.LastInsertId()
}

// UpdateArticle replaces the stored article with the given ID.
func (d *DB) UpdateArticle(art article.Article) error {
	authorsJSON, err := json.Marshal(art.Authors)
	if err != nil {
		return fmt.Errorf("marshaling authors: %w", err)
	}

	res, err := d.db.Exec(`
		UPDATE articles SET
			status = ?, doi = ?, url = ?, pinboard = ?, title = ?, authors_json = ?,
			journal = ?, volume = ?, issue = ?, pages = ?,
			pub_year = ?, pub_month = ?, pub_day = ?, keywords = ?
		WHERE id = ?
	`,
		int(art.Status), nullable(art.DOI), nullable(art.URL), nullable(art.Pinboard),
		art.Title, string(authorsJSON),
		nullable(art.Journal), nullable(art.Volume), nullable(art.Issue), nullable(art.Pages),
		art.Date.Year, art.Date.Month, art.Date.Day, nullable(art.Keywords),
		art.ID,
	)
	if err != nil {
		return fmt.Errorf("updating article %d: %w", art.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no article with ID %d", art.ID)
	}
	return nil
}

// SetArticleStatus updates only the status of the article with the given
// ID. This is the path that assigns Submitted and NonPeerReviewed.
func (d *DB) SetArticleStatus(id int64, status article.Status) error {
	res, err := d.db.Exec(`UPDATE articles SET status = ? WHERE id = ?`, int(status), id)
	if err != nil {
		return fmt.Errorf("updating status of article %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no article with ID %d", id)
	}
	return nil
}

// GetArticle retrieves an article by ID. Returns (nil, nil) when no such
// article exists.
func (d *DB) GetArticle(id int64) (*article.Article, error) {
	row := d.db.QueryRow(`SELECT `+selectArticleFields+` FROM articles WHERE id = ?`, id)
	return scanArticle(row)
}

// GetArticleByDOI retrieves an article by its DOI. Returns (nil, nil) when
// no such article exists.
func (d *DB) GetArticleByDOI(doi string) (*article.Article, error) {
	row := d.db.QueryRow(`SELECT `+selectArticleFields+` FROM articles WHERE doi = ?`, doi)
	return scanArticle(row)
}

// DeleteArticle removes an article by ID.
func (d *DB) DeleteArticle(id int64) error {
	res, err := d.db.Exec(`DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting article %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no article with ID %d", id)
	}
	return nil
}

// ListArticles returns all articles ordered by publication date, newest
// first.
func (d *DB) ListArticles() ([]article.Article, error) {
	rows, err := d.db.Query(`
		SELECT ` + selectArticleFields + `
		FROM articles
		ORDER BY pub_year DESC, pub_month DESC, pub_day DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// ListArticlesByStatus returns the articles with any of the given statuses,
// ordered by publication date, newest first.
func (d *DB) ListArticlesByStatus(statuses ...article.Status) ([]article.Article, error) {
	if len(statuses) == 0 {
		return d.ListArticles()
	}

	query := `SELECT ` + selectArticleFields + ` FROM articles WHERE status IN (`
	args := make([]interface{}, len(statuses))
	for i, s := range statuses {
		if i > 0 {
			query += ", "
		}
		query += "?"
		args[i] = int(s)
	}
	query += `) ORDER BY pub_year DESC, pub_month DESC, pub_day DESC, id DESC`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing articles by status: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// ListInPreparation returns the articles not yet published: accepted or
// submitted, ordered by publication date, newest first.
func (d *DB) ListInPreparation() ([]article.Article, error) {
	return d.ListArticlesByStatus(article.StatusAccepted, article.StatusSubmitted)
}

// CountArticles returns the total number of stored articles.
func (d *DB) CountArticles() (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&count)
	return count, err
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(s scanner) (*article.Article, error) {
	var art article.Article
	var status int
	var authorsJSON string
	var doi, url, pinboard, journal, volume, issue, pages, keywords sql.NullString

	err := s.Scan(
		&art.ID, &status, &doi, &url, &pinboard, &art.Title,
		&authorsJSON, &journal, &volume, &issue, &pages,
		&art.Date.Year, &art.Date.Month, &art.Date.Day, &keywords,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	art.Status = article.Status(status)
	art.DOI = doi.String
	art.URL = url.String
	art.Pinboard = pinboard.String
	art.Journal = journal.String
	art.Volume = volume.String
	art.Issue = issue.String
	art.Pages = pages.String
	art.Keywords = keywords.String

	if err := json.Unmarshal([]byte(authorsJSON), &art.Authors); err != nil {
		return nil, fmt.Errorf("parsing authors JSON for article %d: %w", art.ID, err)
	}

	return &art, nil
}

func scanArticles(rows *sql.Rows) ([]article.Article, error) {
	var arts []article.Article
	for rows.Next() {
		art, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		if art != nil {
			arts = append(arts, *art)
		}
	}
	return arts, rows.Err()
}

// nullable converts a string to sql.NullString, treating empty as NULL.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
