// Command seed loads sample reference data and products into the configured
// database for local development.
package main

import (
	"log"

	"go-stocktrack/internal/config"
	"go-stocktrack/internal/model"
	"go-stocktrack/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	if err := db.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Supplier{},
		&model.Transaction{},
		&model.User{},
	); err != nil {
		log.Fatal("migration failed: ", err)
	}

	seed(db)
	log.Println("sample data loaded")
}

func seed(db *gorm.DB) {
	suppliers := []model.Supplier{
		{SupplierID: "SUP1", Name: "Acme Wholesale", ContactPerson: "Jordan Reyes", Email: "orders@acme-wholesale.example", Phone: "+1-555-0101", Category: "general"},
		{SupplierID: "SUP2", Name: "Northwind Traders", ContactPerson: "Sam Okafor", Email: "sales@northwind.example", Phone: "+1-555-0102", Category: "electronics"},
	}
	customers := []model.Customer{
		{CustomerID: "C1", Name: "Riley Chen", Email: "riley@example.com", Phone: "+1-555-0201", CustomerType: "retail"},
		{CustomerID: "C2", Name: "Morgan Patel", Email: "morgan@example.com", Phone: "+1-555-0202", CustomerType: "wholesale"},
	}
	sup1 := "SUP1"
	sup2 := "SUP2"
	products := []model.Product{
		{ProductID: "P1", Name: "USB-C Cable", Price: 1200, Stock: 50, Category: "electronics", SupplierID: &sup2},
		{ProductID: "P2", Name: "Wireless Mouse", Price: 2500, Stock: 30, Category: "electronics", SupplierID: &sup2},
		{ProductID: "P3", Name: "Notebook A5", Price: 450, Stock: 200, Category: "stationery", SupplierID: &sup1},
		{ProductID: "P4", Name: "Desk Lamp", Price: 3900, Stock: 8, Category: "home", SupplierID: &sup1},
	}

	for _, s := range suppliers {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&s).Error; err != nil {
			log.Fatal("failed to seed supplier ", s.SupplierID, ": ", err)
		}
	}
	for _, c := range customers {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&c).Error; err != nil {
			log.Fatal("failed to seed customer ", c.CustomerID, ": ", err)
		}
	}
	for _, p := range products {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&p).Error; err != nil {
			log.Fatal("failed to seed product ", p.ProductID, ": ", err)
		}
	}
}
