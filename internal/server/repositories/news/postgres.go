package news

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/btxcapital/site/internal/common"
	"github.com/btxcapital/site/internal/dbx"
	"github.com/btxcapital/site/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, article *models.NewsArticle) (*models.NewsArticle, error) {

	query :=
		`INSERT INTO news_articles (title, excerpt, content, category, pdf_key, pdf_url, read_time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		article.Title, article.Excerpt, article.Content, article.Category,
		article.PDFKey, article.PDFURL, article.ReadTime).Scan(&article.ID, &article.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return article, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.NewsArticle, error) {

	query :=
		`SELECT id, title, excerpt, content, category, pdf_key, pdf_url, read_time, created_at
		 FROM news_articles
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	articles := make([]models.NewsArticle, 0)
	for rows.Next() {
		var a models.NewsArticle
		if err := rows.Scan(&a.ID, &a.Title, &a.Excerpt, &a.Content, &a.Category,
			&a.PDFKey, &a.PDFURL, &a.ReadTime, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return articles, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.NewsArticle, error) {

	query :=
		`SELECT id, title, excerpt, content, category, pdf_key, pdf_url, read_time, created_at
		 FROM news_articles
		 WHERE id = $1
		 `

	a := &models.NewsArticle{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Title, &a.Excerpt, &a.Content,
		&a.Category, &a.PDFKey, &a.PDFURL, &a.ReadTime, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id int64) error {

	query := `DELETE FROM news_articles WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
