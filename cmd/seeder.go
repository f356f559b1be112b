package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/category"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if err != nil {
			log.Fatalf("failed to open gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"transactions", "monthly_budgets", "categories"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		seedCategories(db)
		seedTransactions(db)
		seedBudget(db)
	},
}

func seedCategories(db *gorm.DB) {
	for _, c := range category.DefaultCategories {
		var exists int64
		db.Model(&category.Category{}).Where("name = ?", c.Name).Count(&exists)
		if exists > 0 {
			continue
		}
		if err := db.Create(category.NewCategory(c.Name, c.Description)).Error; err != nil {
			log.Fatalf("failed to seed category %s: %v", c.Name, err)
		}
	}
	fmt.Println("Seeded categories")
}

func seedTransactions(db *gorm.DB) {
	var count int64
	db.Model(&transaction.Transaction{}).Count(&count)
	if count > 0 {
		fmt.Println("transactions already present; skipping")
		return
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	samples := []struct {
		txnType     string
		amount      float64
		categoryStr string
		description string
		date        time.Time
	}{
		{transaction.TypeIncome, 4200, "Salary", "Monthly salary", monthStart},
		{transaction.TypeExpense, 320.50, "Food & Dining", "Weekly groceries", monthStart.AddDate(0, 0, 2)},
		{transaction.TypeExpense, 45, "Transportation", "Fuel", monthStart.AddDate(0, 0, 3)},
		{transaction.TypeExpense, 120, "Entertainment", "Concert tickets", monthStart.AddDate(0, 0, 5)},
		{transaction.TypeExpense, 89.99, "Shopping", "Running shoes", monthStart.AddDate(0, 0, 7)},
		{transaction.TypeExpense, 210, "Bills & Utilities", "Electricity bill", monthStart.AddDate(0, -1, 4)},
		{transaction.TypeExpense, 640, "Travel", "Weekend trip", monthStart.AddDate(0, -2, 10)},
		{transaction.TypeExpense, 55, "Healthcare", "Pharmacy", monthStart.AddDate(0, -3, 1)},
	}

	for _, s := range samples {
		txn := &transaction.Transaction{
			ID:          uuid.NewString(),
			Type:        s.txnType,
			Amount:      s.amount,
			Category:    s.categoryStr,
			Description: s.description,
			Date:        s.date.Format(transaction.DateLayout),
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := db.Create(txn).Error; err != nil {
			log.Fatalf("failed to seed transaction: %v", err)
		}
	}
	fmt.Printf("Seeded %d transactions\n", len(samples))
}

func seedBudget(db *gorm.DB) {
	month := time.Now().Format(budget.MonthLayout)

	var count int64
	db.Model(&budget.MonthlyBudget{}).Where("month = ?", month).Count(&count)
	if count > 0 {
		fmt.Println("budget already present; skipping")
		return
	}

	budgets := budget.CategoryAmounts{
		"Food & Dining":     500,
		"Transportation":    150,
		"Shopping":          200,
		"Entertainment":     100,
		"Bills & Utilities": 300,
	}

	now := time.Now()
	b := &budget.MonthlyBudget{
		Month:       month,
		Budgets:     budgets,
		TotalBudget: budgets.Total(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.Create(b).Error; err != nil {
		log.Fatalf("failed to seed budget: %v", err)
	}
	fmt.Println("Seeded budget for", month)
}
