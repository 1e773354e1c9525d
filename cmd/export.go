package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/naufalhakm/rekap-perjadin/internal/export"
	"github.com/naufalhakm/rekap-perjadin/internal/trip"
	tripPostgres "github.com/naufalhakm/rekap-perjadin/internal/trip/postgres"
)

var exportOutputDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the trip recap CSV to disk",
	Long:  `Export all recorded trips as the recap CSV, sorted most recent first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := gorm.Open(gormPostgres.Open(cfg.Database.Source), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open db: %v", err)
		}

		repo := tripPostgres.NewTripRepository(db)
		models, err := repo.ListAll()
		if err != nil {
			return fmt.Errorf("failed to load trips: %w", err)
		}

		trips := trip.FromDataModelSlice(models)
		trip.SortByStartDateDesc(trips)

		file := export.Export(trips, time.Now())
		if file == nil {
			fmt.Println("Belum ada data perjalanan dinas, tidak ada file yang dibuat.")
			return nil
		}

		outDir := exportOutputDir
		if outDir == "" {
			outDir = cfg.Export.OutputDir
		}
		if outDir == "" {
			outDir = "."
		}

		path := filepath.Join(outDir, file.Name)
		if err := os.WriteFile(path, file.Content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("Exported %d trips to %s\n", len(trips), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutputDir, "out", "o", "", "output directory (defaults to export.output_dir from config)")
}
