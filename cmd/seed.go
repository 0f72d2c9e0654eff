package cmd

import (
	"context"
	"fmt"
	"log"

	"ArtLens/config"
	"ArtLens/db"
	"ArtLens/model"
	"ArtLens/repository"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the catalog with sample data",
	Long:  `Create the sample artists, artworks and AR models used by the demo gallery. Existing rows are left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		if err := db.ConnectDB(cfg); err != nil {
			log.Fatalf("Failed to connect to MySQL: %v", err)
		}
		defer db.CloseDB()
		if err := db.ConnectGormDB(cfg); err != nil {
			log.Fatalf("Failed to connect to MySQL (gorm): %v", err)
		}
		defer db.CloseGormDB()

		if err := db.InitDB(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		if err := db.MigrateGorm(); err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		ctx := context.Background()
		artists := repository.NewGormArtistRepository(db.GormDB)
		artworks := repository.NewMySQLArtworkRepository(db.DB)
		models := repository.NewGormARModelRepository(db.GormDB)

		artistCount := 0
		for i := range seedArtists {
			a := seedArtists[i]
			existing, err := artists.GetByID(ctx, a.ID)
			if err != nil {
				log.Fatalf("Failed to look up artist %s: %v", a.ID, err)
			}
			if existing != nil {
				continue
			}
			if err := artists.Create(ctx, &a); err != nil {
				log.Fatalf("Failed to create artist %s: %v", a.ID, err)
			}
			artistCount++
		}

		artworkCount := 0
		for i := range seedArtworks {
			w := seedArtworks[i]
			existing, err := artworks.GetArtworkByID(w.ID)
			if err != nil {
				log.Fatalf("Failed to look up artwork %s: %v", w.ID, err)
			}
			if existing != nil {
				continue
			}
			if err := artworks.CreateArtwork(&w); err != nil {
				log.Fatalf("Failed to create artwork %s: %v", w.ID, err)
			}
			artworkCount++
		}

		modelCount := 0
		for i := range seedModels {
			m := seedModels[i]
			existing, err := models.GetByID(ctx, m.ID)
			if err != nil {
				log.Fatalf("Failed to look up model %s: %v", m.ID, err)
			}
			if existing != nil {
				continue
			}
			if err := models.Create(ctx, &m); err != nil {
				log.Fatalf("Failed to create model %s: %v", m.ID, err)
			}
			modelCount++
		}

		fmt.Printf("Seeded %d artists, %d artworks, %d models\n", artistCount, artworkCount, modelCount)
	},
}

var seedArtists = []model.Artist{
	{
		ID:         "artist-1",
		Name:       "Mara Lindqvist",
		Bio:        "Oil painter working with coastal light and long exposures of memory.",
		AvatarURL:  "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=200",
		Discipline: "Oil painting",
		Location:   "Gothenburg",
	},
	{
		ID:         "artist-2",
		Name:       "Tomás Reyes",
		Bio:        "Still life and restoration work, with a focus on citrus and glass.",
		AvatarURL:  "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=200",
		Discipline: "Still life",
		Location:   "Valencia",
	},
	{
		ID:         "artist-3",
		Name:       "June Okafor",
		Bio:        "Large-format abstract canvases built from layered pigment washes.",
		Discipline: "Abstract",
		Location:   "Lagos",
	},
}

var seedArtworks = []model.Artwork{
	{
		ID:          "1",
		ArtistID:    "artist-1",
		Title:       "Harbor at Dusk",
		ImageURL:    "https://images.unsplash.com/photo-1549289524-06cf8837ace5?w=800",
		Description: "Evening light over a working harbor, painted from the north pier.",
		Categories:  []string{"landscape", "oil"},
		Dimensions:  "90 x 60 cm",
		Medium:      "Oil on canvas",
		Price:       "$1,800",
		OnSale:      true,
	},
	{
		ID:          "2",
		ArtistID:    "artist-1",
		Title:       "Morning Fog, Inner Archipelago",
		ImageURL:    "https://images.unsplash.com/photo-1518998053901-5348d3961a04?w=800",
		Description: "Low fog between islands, seen from the first ferry out.",
		Categories:  []string{"landscape", "oil"},
		Dimensions:  "70 x 50 cm",
		Medium:      "Oil on canvas",
		Price:       "$1,200",
		OnSale:      true,
	},
	{
		ID:          "3",
		ArtistID:    "artist-3",
		Title:       "Sediment IV",
		ImageURL:    "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=800",
		Description: "Fourth in a series of layered washes over raw linen.",
		Categories:  []string{"abstract"},
		Dimensions:  "150 x 150 cm",
		Medium:      "Pigment on linen",
	},
	{
		ID:          "7",
		ArtistID:    "artist-2",
		Title:       "Still Life with Citrus",
		ImageURL:    "https://images.unsplash.com/photo-1557800636-894a64c1696f?w=800",
		Description: "Oranges and cut glass on a dark table.",
		Categories:  []string{"still-life", "oil"},
		Dimensions:  "40 x 30 cm",
		Medium:      "Oil on panel",
		Price:       "$950",
		OnSale:      true,
	},
}

var seedModels = []model.ARModel{
	{
		ID:           "model-frame",
		Name:         "Antique Frame",
		EmbedURI:     "https://sketchfab.com/models/antique-frame/embed",
		ThumbnailURI: "https://images.unsplash.com/photo-1513364776144-60967b0f800f?w=400",
		Description:  "Carved wooden frame, suitable for most canvases.",
		Creator:      "ArtLens Studio",
	},
	{
		ID:           "model-easel",
		Name:         "Gallery Easel",
		EmbedURI:     "https://sketchfab.com/models/gallery-easel/embed",
		Description:  "Freestanding display easel.",
		Creator:      "ArtLens Studio",
		CatalogID:    "gallery-easel",
	},
	{
		ID:           "model-pedestal",
		Name:         "Stone Pedestal",
		EmbedURI:     "https://sketchfab.com/models/stone-pedestal/embed",
		Description:  "Plinth for sculptural pieces.",
		Creator:      "ArtLens Studio",
		CatalogID:    "stone-pedestal",
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
