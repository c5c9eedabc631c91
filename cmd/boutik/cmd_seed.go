package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/boutiklabs/boutik/app/models"
	"github.com/boutiklabs/boutik/app/repositories"
	"github.com/boutiklabs/boutik/config"
	"github.com/boutiklabs/boutik/pkg/storage"
)

// boutik seed — write a small sample catalogue to the data file.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a sample catalogue to the data file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		storage.Connect()

		store := repositories.NewProductStore(storage.Default(), config.DataFile())
		if len(store.Load()) > 0 {
			fmt.Println("Data file already has products, leaving it alone.")
			return nil
		}

		now := time.Now().UnixMilli()
		seed := []models.Product{
			{
				ID:                now,
				Code:              "P100",
				Name:              "Ordinateur portable",
				Description:       "PC portable 15 pouces",
				Image:             "laptop.png",
				Category:          "Électronique",
				Price:             1500,
				Quantity:          5,
				InternalReference: "REF100",
				ShellID:           1,
				InventoryStatus:   models.InStock,
				Rating:            4.5,
				CreatedAt:         now,
				UpdatedAt:         now,
			},
			{
				ID:                now + 1,
				Code:              "P101",
				Name:              "Casque audio",
				Description:       "Casque sans fil",
				Image:             "headset.png",
				Category:          "Accessoires",
				Price:             199,
				Quantity:          2,
				InternalReference: "REF101",
				ShellID:           2,
				InventoryStatus:   models.LowStock,
				Rating:            4,
				CreatedAt:         now,
				UpdatedAt:         now,
			},
		}

		if err := store.Save(seed); err != nil {
			return err
		}

		fmt.Printf("Seeded %d products into %s\n", len(seed), config.DataFile())
		return nil
	},
}
