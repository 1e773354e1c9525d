package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	tripDatamodel "github.com/naufalhakm/rekap-perjadin/internal/core/datamodel/trip"
	"github.com/naufalhakm/rekap-perjadin/internal/trip"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample trips for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := gorm.Open(gormPostgres.Open(cfg.Database.Source), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open db: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM trips").Error; err != nil {
				log.Fatalf("failed to clear trips: %v", err)
			}
			fmt.Println("Cleared existing trips")
		}

		seedAuthor := "seed-session"
		samples := []*trip.Trip{
			{
				TravelerName:     "Budi Santoso",
				Destination:      "Surabaya",
				LodgingName:      "Hotel Majapahit",
				StartDate:        "2024-03-01",
				EndDate:          "2024-03-03",
				Purpose:          "Rapat koordinasi wilayah timur",
				VehicleKind:      trip.VehiclePesawat,
				TicketNumber:     "GA-3151",
				Seat:             "12A",
				SuratTugasNumber: "ST-2024/03/001",
				NotaDinasNumber:  "ND-2024/03/001",
				LodgingCost:      1200000,
				MealCost:         450000,
				LocalTransport:   300000,
				TicketPrice:      1850000,
			},
			{
				TravelerName:     "Siti Rahayu",
				Destination:      "Bandung",
				StartDate:        "2024-02-15",
				EndDate:          "2024-02-16",
				Purpose:          "Sosialisasi aplikasi perjadin",
				VehicleKind:      trip.VehicleDinas,
				SuratTugasNumber: "ST-2024/02/014",
				NotaDinasNumber:  "ND-2024/02/017",
				FuelCost:         350000,
				TollCost:         150000,
				MealCost:         200000,
			},
			{
				TravelerName:     "Agus Wijaya",
				Destination:      "Yogyakarta",
				LodgingName:      "Hotel Tentrem",
				StartDate:        "2024-01-10",
				EndDate:          "2024-01-12",
				Purpose:          "Pendampingan audit internal",
				VehicleKind:      trip.VehicleKereta,
				TicketNumber:     "KA-ARGO-77",
				Seat:             "EKS-3C",
				SuratTugasNumber: "ST-2024/01/005",
				NotaDinasNumber:  "ND-2024/01/006",
				LodgingCost:      900000,
				MealCost:         350000,
				LocalTransport:   150000,
				TicketPrice:      550000,
			},
		}

		for _, s := range samples {
			s.TotalCost = s.RecomputeTotal()
			s.AuthorID = &seedAuthor

			dm := trip.ToDataModel(s)
			dm.ID = uuid.NewString()

			var exists int64
			db.Model(&tripDatamodel.Trip{}).
				Where("surat_tugas_number = ?", dm.SuratTugasNumber).
				Count(&exists)
			if exists > 0 {
				fmt.Printf("trip %s already seeded, skipping\n", dm.SuratTugasNumber)
				continue
			}

			if err := db.Create(dm).Error; err != nil {
				log.Fatalf("failed to seed trip %s: %v", dm.SuratTugasNumber, err)
			}
			fmt.Printf("Seeded trip %s (%s -> %s)\n", dm.SuratTugasNumber, dm.TravelerName, dm.Destination)
		}

		fmt.Println("Seeding done")
	},
}
