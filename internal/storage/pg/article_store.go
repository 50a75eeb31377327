package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/news-finder/internal/domain"
	"github.com/DjordjeVuckovic/news-finder/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const foreignKeyViolation = "23503"

const articleColumns = `
	a.id, a.title, a.content, a.word_count, a.url, a.channel_id, c.name,
	a.source, a.published_date, a.ingested_date`

type ArticleStore struct {
	db *pgxpool.Pool
}

func NewArticleStore(pool *ConnectionPool) *ArticleStore {
	return &ArticleStore{db: pool.conn}
}

func (s *ArticleStore) FindByURL(ctx context.Context, url string) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + `
		FROM articles a
		LEFT JOIN channels c ON c.id = a.channel_id
		WHERE a.url = $1`

	article, err := scanArticle(s.db.QueryRow(ctx, query, url))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find article by url: %w", err)
	}
	return article, nil
}

// Insert relies on the unique url constraint: a concurrent writer that loses the
// race gets created=false and the row the winner wrote.
func (s *ArticleStore) Insert(ctx context.Context, a domain.Article) (*domain.Article, bool, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.IngestedDate.IsZero() {
		a.IngestedDate = time.Now()
	}

	cmd := `
		WITH inserted AS (
			INSERT INTO articles (id, title, content, word_count, url, channel_id, source, published_date, ingested_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (url) DO NOTHING
			RETURNING *
		)
		SELECT ` + articleColumns + `
		FROM inserted a
		LEFT JOIN channels c ON c.id = a.channel_id`

	row := s.db.QueryRow(ctx, cmd,
		a.ID,
		a.Title,
		a.Content,
		a.WordCount,
		a.URL,
		a.ChannelID,
		a.Source,
		a.PublishedDate,
		a.IngestedDate,
	)

	inserted, err := scanArticle(row)
	switch {
	case err == nil:
		return inserted, true, nil
	case errors.Is(err, pgx.ErrNoRows):
		existing, findErr := s.FindByURL(ctx, a.URL)
		if findErr != nil {
			return nil, false, findErr
		}
		return existing, false, nil
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, false, fmt.Errorf("channel %v: %w", a.ChannelID, storage.ErrNotFound)
		}
		return nil, false, fmt.Errorf("failed to insert article: %w", err)
	}
}

func (s *ArticleStore) UpdateWordCount(ctx context.Context, url string, count int) (*domain.Article, error) {
	cmd := `
		WITH updated AS (
			UPDATE articles SET word_count = $2 WHERE url = $1
			RETURNING *
		)
		SELECT ` + articleColumns + `
		FROM updated a
		LEFT JOIN channels c ON c.id = a.channel_id`

	article, err := scanArticle(s.db.QueryRow(ctx, cmd, url, count))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update word count: %w", err)
	}
	return article, nil
}

func (s *ArticleStore) FilterByWordCountRange(ctx context.Context, min, max int) ([]domain.Article, error) {
	query := `SELECT ` + articleColumns + `
		FROM articles a
		LEFT JOIN channels c ON c.id = a.channel_id
		WHERE a.word_count BETWEEN $1 AND $2
		ORDER BY a.word_count, a.url`

	rows, err := s.db.Query(ctx, query, min, max)
	if err != nil {
		return nil, fmt.Errorf("failed to execute word count query: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return articles, nil
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var article domain.Article
	if err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.WordCount,
		&article.URL,
		&article.ChannelID,
		&article.ChannelName,
		&article.Source,
		&article.PublishedDate,
		&article.IngestedDate,
	); err != nil {
		return nil, err
	}
	return &article, nil
}
