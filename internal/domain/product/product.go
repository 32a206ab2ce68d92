package product

import "time"

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	SubCategory string
	Sizes       []string
	Image       []string
	Bestseller  bool
	Date        time.Time
}
