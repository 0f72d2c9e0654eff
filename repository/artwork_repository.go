package repository

import (
	"database/sql"
	"fmt"
	"time"

	"ArtLens/model"
)

// ArtworkRepository defines the interface for artwork catalog operations.
type ArtworkRepository interface {
	CreateArtwork(artwork *model.Artwork) error
	GetArtworkByID(id string) (*model.Artwork, error)
	GetAllArtworks(limit, offset int) ([]*model.Artwork, error)
	// GetArtworksByCategory returns artworks sharing the given category,
	// excluding excludeID, newest first.
	GetArtworksByCategory(category, excludeID string, limit int) ([]*model.Artwork, error)
}

// mysqlArtworkRepository implements ArtworkRepository for MySQL.
type mysqlArtworkRepository struct {
	db *sql.DB
}

// NewMySQLArtworkRepository creates a new mysqlArtworkRepository.
func NewMySQLArtworkRepository(db *sql.DB) ArtworkRepository {
	return &mysqlArtworkRepository{db: db}
}

const artworkColumns = `id, artist_id, title, image_url, description, categories, dimensions, medium, price, on_sale, like_count, comment_count, created_at, updated_at`

// CreateArtwork adds a new artwork to the catalog.
func (r *mysqlArtworkRepository) CreateArtwork(artwork *model.Artwork) error {
	query := `INSERT INTO artworks (` + artworkColumns + `)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement for CreateArtwork: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	_, err = stmt.Exec(
		artwork.ID, artwork.ArtistID, artwork.Title, artwork.ImageURL, artwork.Description,
		model.JoinCategories(artwork.Categories), artwork.Dimensions, artwork.Medium,
		artwork.Price, artwork.OnSale, artwork.LikeCount, artwork.CommentCount, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to execute CreateArtwork: %w", err)
	}
	return nil
}

// GetArtworkByID retrieves an artwork by its ID. Returns (nil, nil) when absent.
func (r *mysqlArtworkRepository) GetArtworkByID(id string) (*model.Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks WHERE id = ?`
	artwork, err := scanArtwork(r.db.QueryRow(query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to scan artwork by ID %s: %w", id, err)
	}
	return artwork, nil
}

// GetAllArtworks retrieves artworks newest first.
func (r *mysqlArtworkRepository) GetAllArtworks(limit, offset int) ([]*model.Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks ORDER BY created_at DESC LIMIT ? OFFSET ?`
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query artworks: %w", err)
	}
	defer rows.Close()

	return collectArtworks(rows)
}

// GetArtworksByCategory retrieves artworks matching a category tag, excluding
// one artwork (typically the one recommendations are computed for).
func (r *mysqlArtworkRepository) GetArtworksByCategory(category, excludeID string, limit int) ([]*model.Artwork, error) {
	// categories is a comma-joined list; FIND_IN_SET matches a whole tag
	// without the substring false-positives of LIKE.
	query := `SELECT ` + artworkColumns + ` FROM artworks
	           WHERE FIND_IN_SET(?, categories) > 0 AND id != ?
	           ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.Query(query, category, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query artworks by category %s: %w", category, err)
	}
	defer rows.Close()

	return collectArtworks(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArtwork(row rowScanner) (*model.Artwork, error) {
	artwork := &model.Artwork{}
	var categories string
	err := row.Scan(
		&artwork.ID, &artwork.ArtistID, &artwork.Title, &artwork.ImageURL, &artwork.Description,
		&categories, &artwork.Dimensions, &artwork.Medium, &artwork.Price, &artwork.OnSale,
		&artwork.LikeCount, &artwork.CommentCount, &artwork.CreatedAt, &artwork.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Artwork not found
		}
		return nil, err
	}
	artwork.Categories = model.SplitCategories(categories)
	return artwork, nil
}

func collectArtworks(rows *sql.Rows) ([]*model.Artwork, error) {
	artworks := make([]*model.Artwork, 0)
	for rows.Next() {
		artwork, err := scanArtwork(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artwork row: %w", err)
		}
		artworks = append(artworks, artwork)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during artwork rows iteration: %w", err)
	}
	return artworks, nil
}
