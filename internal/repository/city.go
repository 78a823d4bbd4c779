package repository

import (
	"context"
	"fmt"

	"github.com/roamly/roamly/internal/model"
)

// defaultCities is the reference seed applied once when the cities table
// is empty.
var defaultCities = []model.City{
	{Name: "Warsaw", Country: "Poland"},
	{Name: "Rzeszów", Country: "Poland"},
	{Name: "Istanbul", Country: "Turkey"},
	{Name: "Berlin", Country: "Germany"},
	{Name: "Vienna", Country: "Austria"},
	{Name: "Kraków", Country: "Poland"},
	{Name: "Prague", Country: "Czech Republic"},
	{Name: "Budapest", Country: "Hungary"},
	{Name: "Amsterdam", Country: "Netherlands"},
	{Name: "Paris", Country: "France"},
	{Name: "Madrid", Country: "Spain"},
	{Name: "Milan", Country: "Italy"},
	{Name: "Barcelona", Country: "Spain"},
	{Name: "Nice", Country: "France"},
	{Name: "Lisbon", Country: "Portugal"},
	{Name: "Athens", Country: "Greece"},
	{Name: "Dubrovnik", Country: "Croatia"},
	{Name: "Santorini", Country: "Greece"},
	{Name: "Mallorca", Country: "Spain"},
	{Name: "Rome", Country: "Italy"},
}

// ListCities retrieves all cities ordered by name.
func (r *Repository) ListCities(ctx context.Context) ([]*model.City, error) {
	query := `
		SELECT id, name, country, created_at
		FROM cities
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	defer rows.Close()

	var cities []*model.City
	for rows.Next() {
		var city model.City
		if err := rows.Scan(&city.ID, &city.Name, &city.Country, &city.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, &city)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cities: %w", err)
	}

	return cities, nil
}

// SeedCities inserts the default city set if the table is empty.
// Safe to call on every startup.
func (r *Repository) SeedCities(ctx context.Context) error {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cities`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count cities: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, city := range defaultCities {
		// ON CONFLICT guards against two instances seeding concurrently.
		_, err := r.pool.Exec(ctx,
			`INSERT INTO cities (name, country) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			city.Name, city.Country,
		)
		if err != nil {
			return fmt.Errorf("failed to seed city %s: %w", city.Name, err)
		}
	}

	return nil
}
