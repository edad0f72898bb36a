// Package store persists the reconciled entities.
//
// All three operations are upserts keyed by the entity's business identifier:
// look up by key, update in place when found, insert otherwise. Lookup and
// write run inside one transaction so a single store call is an atomic unit;
// the unique indexes on the business keys backstop anything racing between
// calls.
package store

import (
	"context"
	"errors"
	"fmt"

	"hr-sync/feature/integration/models"

	"gorm.io/gorm"
)

// OpError wraps a storage failure with the operation that caused it.
// It aborts the current record only, never the whole run.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("storage error in %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// EmployeeResult reports the affected employee row and whether it was created.
type EmployeeResult struct {
	ID    uint
	IsNew bool
}

// Store executes the upsert operations against the shared database handle.
type Store struct {
	db *gorm.DB
}

// New creates a store over the given connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the persisted schema: the three entity tables with their
// unique business keys and the employee foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Company{}, &models.CostCenter{}, &models.Employee{})
}

// UpsertCompany resolves a company by CNPJ, refreshing its name when it
// already exists. It returns the internal id of the row.
func (s *Store) UpsertCompany(ctx context.Context, cnpj, name string) (uint, error) {
	var id uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Company
		err := tx.Where("cnpj = ?", cnpj).First(&existing).Error
		switch {
		case err == nil:
			id = existing.ID
			return tx.Model(&existing).Update("name", name).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			company := models.Company{CNPJ: cnpj, Name: name}
			if err := tx.Create(&company).Error; err != nil {
				return err
			}
			id = company.ID
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return 0, &OpError{Op: "upsert company", Err: err}
	}
	return id, nil
}

// UpsertCostCenter resolves a cost center by its identifier, refreshing its
// name when it already exists. It returns the internal id of the row.
func (s *Store) UpsertCostCenter(ctx context.Context, identifier, name string) (uint, error) {
	var id uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.CostCenter
		err := tx.Where("identifier = ?", identifier).First(&existing).Error
		switch {
		case err == nil:
			id = existing.ID
			return tx.Model(&existing).Update("name", name).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			cc := models.CostCenter{Identifier: identifier, Name: name}
			if err := tx.Create(&cc).Error; err != nil {
				return err
			}
			id = cc.ID
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return 0, &OpError{Op: "upsert cost center", Err: err}
	}
	return id, nil
}

// UpsertEmployee resolves an employee by CPF. An existing row has all mutable
// fields replaced, including the company and cost-center references; a missing
// row is inserted whole. Optional fields overwrite with their incoming value
// even when empty.
func (s *Store) UpsertEmployee(ctx context.Context, emp models.Employee) (EmployeeResult, error) {
	var result EmployeeResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Employee
		err := tx.Where("cpf = ?", emp.CPF).First(&existing).Error
		switch {
		case err == nil:
			result = EmployeeResult{ID: existing.ID, IsNew: false}
			// Map form so empty strings clear columns instead of being skipped.
			return tx.Model(&existing).Updates(map[string]any{
				"username":       emp.Username,
				"first_name":     emp.FirstName,
				"last_name":      emp.LastName,
				"role":           emp.Role,
				"registration":   emp.Registration,
				"company_id":     emp.CompanyID,
				"cost_center_id": emp.CostCenterID,
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&emp).Error; err != nil {
				return err
			}
			result = EmployeeResult{ID: emp.ID, IsNew: true}
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return EmployeeResult{}, &OpError{Op: "upsert employee", Err: err}
	}
	return result, nil
}
