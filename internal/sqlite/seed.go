package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Fixed sample schema. Every request sees exactly these two tables
// with exactly the rows below; the values are never mutated.
const (
	createEmployeesTable = `
		CREATE TABLE employees (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			department TEXT,
			salary INTEGER,
			hire_date TEXT
		)`

	createDepartmentsTable = `
		CREATE TABLE departments (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			location TEXT
		)`
)

type employeeRow struct {
	ID         int
	Name       string
	Department string
	Salary     int
	HireDate   string
}

type departmentRow struct {
	ID       int
	Name     string
	Location string
}

var employeeSeed = []employeeRow{
	{1, "John Doe", "Engineering", 75000, "2020-01-15"},
	{2, "Jane Smith", "Marketing", 65000, "2019-03-22"},
	{3, "Bob Johnson", "Engineering", 80000, "2018-07-10"},
	{4, "Alice Brown", "HR", 60000, "2021-05-03"},
	{5, "Charlie Wilson", "Sales", 70000, "2020-11-20"},
}

var departmentSeed = []departmentRow{
	{1, "Engineering", "Building A"},
	{2, "Marketing", "Building B"},
	{3, "HR", "Building C"},
	{4, "Sales", "Building B"},
}

// Seed creates the sample tables and inserts the fixed rows, employees
// first. This step is not user-influenced; a failure here means the
// engine itself is unusable.
func Seed(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createEmployeesTable); err != nil {
		return fmt.Errorf("failed to create employees table: %w", err)
	}

	if _, err := db.ExecContext(ctx, createDepartmentsTable); err != nil {
		return fmt.Errorf("failed to create departments table: %w", err)
	}

	for _, e := range employeeSeed {
		_, err := db.ExecContext(ctx,
			"INSERT INTO employees VALUES (?, ?, ?, ?, ?)",
			e.ID, e.Name, e.Department, e.Salary, e.HireDate)
		if err != nil {
			return fmt.Errorf("failed to seed employees: %w", err)
		}
	}

	for _, d := range departmentSeed {
		_, err := db.ExecContext(ctx,
			"INSERT INTO departments VALUES (?, ?, ?)",
			d.ID, d.Name, d.Location)
		if err != nil {
			return fmt.Errorf("failed to seed departments: %w", err)
		}
	}

	return nil
}
