package services

import (
	"context"
	"fmt"
	"strconv"

	"icecream-telegram/db"
	"icecream-telegram/models"
)

func ListFlavors(ctx context.Context) ([]models.Flavor, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name FROM flavors
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flavors []models.Flavor
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		flavors = append(flavors, models.Flavor{
			ID:   strconv.FormatInt(id, 10),
			Name: name,
		})
	}
	return flavors, rows.Err()
}

func ListToppings(ctx context.Context) ([]models.Topping, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, price FROM toppings
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var toppings []models.Topping
	for rows.Next() {
		var id int64
		var name string
		var price float64
		if err := rows.Scan(&id, &name, &price); err != nil {
			return nil, err
		}
		toppings = append(toppings, models.Topping{
			ID:    strconv.FormatInt(id, 10),
			Name:  name,
			Price: price,
		})
	}
	return toppings, rows.Err()
}

func GetFlavor(ctx context.Context, idStr string) (*models.Flavor, error) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, err
	}
	var name string
	err = db.Pool.QueryRow(ctx, `SELECT name FROM flavors WHERE id = $1`, id).Scan(&name)
	if err != nil {
		return nil, err
	}
	return &models.Flavor{ID: idStr, Name: name}, nil
}

func GetTopping(ctx context.Context, idStr string) (*models.Topping, error) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, err
	}
	var name string
	var price float64
	err = db.Pool.QueryRow(ctx, `SELECT name, price FROM toppings WHERE id = $1`, id).Scan(&name, &price)
	if err != nil {
		return nil, err
	}
	return &models.Topping{ID: idStr, Name: name, Price: price}, nil
}

func AddFlavor(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("name is required")
	}
	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO flavors (name) VALUES ($1)
		RETURNING id`,
		name,
	).Scan(&id)
	return id, err
}

func AddTopping(ctx context.Context, name string, price float64) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("name is required")
	}
	if price < 0 {
		return 0, fmt.Errorf("price must be >= 0")
	}
	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO toppings (name, price) VALUES ($1, $2)
		RETURNING id`,
		name, price,
	).Scan(&id)
	return id, err
}

func DeleteFlavor(ctx context.Context, id int64) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM flavors WHERE id = $1`, id)
	return err
}

func DeleteTopping(ctx context.Context, id int64) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM toppings WHERE id = $1`, id)
	return err
}
