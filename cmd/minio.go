package cmd

import (
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path"
	"path/filepath"

	"ArtLens/config"
	"ArtLens/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
)

var (
	minioPrefix string
	minioUpload string
)

var minioCmd = &cobra.Command{
	Use:   "minio",
	Short: "Inspect or upload model assets",
	Long:  `List objects in the asset bucket, or upload a local model/texture file under models/catalog/.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		fmt.Printf("MinIO: %s, bucket %s\n", cfg.MinioEndpoint, cfg.MinioBucket)

		if err := storage.InitMinio(cfg); err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}

		ctx := context.Background()

		if minioUpload != "" {
			store := storage.NewAssetStore(cfg)
			f, err := os.Open(minioUpload)
			if err != nil {
				log.Fatalf("Failed to open %s: %v", minioUpload, err)
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				log.Fatalf("Failed to stat %s: %v", minioUpload, err)
			}

			ext := filepath.Ext(minioUpload)
			contentType := mime.TypeByExtension(ext)
			if contentType == "" {
				contentType = "application/octet-stream"
			}

			object := path.Join("models", "catalog", filepath.Base(minioUpload))
			if err := store.UploadAsset(ctx, object, f, info.Size(), contentType); err != nil {
				log.Fatalf("Upload failed: %v", err)
			}
			fmt.Printf("Uploaded %s\n", object)
			return
		}

		client := storage.GetMinioClient()
		objects := client.ListObjects(ctx, cfg.MinioBucket, minio.ListObjectsOptions{
			Prefix:    minioPrefix,
			Recursive: true,
		})
		count := 0
		for object := range objects {
			if object.Err != nil {
				log.Fatalf("Listing failed: %v", object.Err)
			}
			fmt.Printf("%10d  %s\n", object.Size, object.Key)
			count++
		}
		fmt.Printf("%d objects\n", count)
	},
}

func init() {
	rootCmd.AddCommand(minioCmd)

	minioCmd.Flags().StringVarP(&minioPrefix, "prefix", "p", "", "list only objects under this prefix")
	minioCmd.Flags().StringVarP(&minioUpload, "upload", "u", "", "upload a local file to models/catalog/")
}
