package store_test

import (
	"context"
	"testing"

	"hr-sync/core/database"
	"hr-sync/feature/integration/models"
	"hr-sync/feature/integration/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSqliteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))
	return db
}

func employeeFixture() models.Employee {
	return models.Employee{
		CPF:          "11144477735",
		Username:     "jdoe",
		FirstName:    "John",
		LastName:     "Doe",
		Role:         "Analyst",
		Registration: "E-100",
		CompanyID:    1,
		CostCenterID: 1,
	}
}

func TestUpsertCompany_Idempotent(t *testing.T) {
	db := setupSqliteDB(t)
	s := store.New(db)
	ctx := context.Background()

	first, err := s.UpsertCompany(ctx, "12345678000199", "Acme")
	require.NoError(t, err)

	second, err := s.UpsertCompany(ctx, "12345678000199", "Acme")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var count int64
	require.NoError(t, db.Model(&models.Company{}).Where("cnpj = ?", "12345678000199").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertCompany_RenamesOnLaterReference(t *testing.T) {
	db := setupSqliteDB(t)
	s := store.New(db)
	ctx := context.Background()

	id, err := s.UpsertCompany(ctx, "12345678000199", "Acme")
	require.NoError(t, err)

	again, err := s.UpsertCompany(ctx, "12345678000199", "Acme Holding")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	var company models.Company
	require.NoError(t, db.First(&company, id).Error)
	assert.Equal(t, "Acme Holding", company.Name)
}

func TestUpsertCostCenter_Idempotent(t *testing.T) {
	db := setupSqliteDB(t)
	s := store.New(db)
	ctx := context.Background()

	first, err := s.UpsertCostCenter(ctx, "CC1", "Ops")
	require.NoError(t, err)

	second, err := s.UpsertCostCenter(ctx, "CC1", "Operations")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var cc models.CostCenter
	require.NoError(t, db.First(&cc, first).Error)
	assert.Equal(t, "Operations", cc.Name)

	var count int64
	require.NoError(t, db.Model(&models.CostCenter{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertEmployee_InsertThenUpdate(t *testing.T) {
	db := setupSqliteDB(t)
	s := store.New(db)
	ctx := context.Background()

	companyID, err := s.UpsertCompany(ctx, "12345678000199", "Acme")
	require.NoError(t, err)
	ccID, err := s.UpsertCostCenter(ctx, "CC1", "Ops")
	require.NoError(t, err)

	emp := employeeFixture()
	emp.CompanyID = companyID
	emp.CostCenterID = ccID

	created, err := s.UpsertEmployee(ctx, emp)
	require.NoError(t, err)
	assert.True(t, created.IsNew)
	assert.NotZero(t, created.ID)

	// Same CPF, changed role: update in place.
	emp.Role = "Senior Analyst"
	updated, err := s.UpsertEmployee(ctx, emp)
	require.NoError(t, err)
	assert.False(t, updated.IsNew)
	assert.Equal(t, created.ID, updated.ID)

	var row models.Employee
	require.NoError(t, db.First(&row, created.ID).Error)
	assert.Equal(t, "Senior Analyst", row.Role)

	var count int64
	require.NoError(t, db.Model(&models.Employee{}).Where("cpf = ?", emp.CPF).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertEmployee_RepointsReferences(t *testing.T) {
	db := setupSqliteDB(t)
	s := store.New(db)
	ctx := context.Background()

	firstCompany, err := s.UpsertCompany(ctx, "12345678000199", "Acme")
	require.NoError(t, err)
	secondCompany, err := s.UpsertCompany(ctx, "98765432000188", "Globex")
	require.NoError(t, err)
	firstCC, err := s.UpsertCostCenter(ctx, "CC1", "Ops")
	require.NoError(t, err)
	secondCC, err := s.UpsertCostCenter(ctx, "CC2", "Finance")
	require.NoError(t, err)

	emp := employeeFixture()
	emp.CompanyID = firstCompany
	emp.CostCenterID = firstCC
	created, err := s.UpsertEmployee(ctx, emp)
	require.NoError(t, err)

	// The source moved the employee to a different company and cost center.
	emp.CompanyID = secondCompany
	emp.CostCenterID = secondCC
	updated, err := s.UpsertEmployee(ctx, emp)
	require.NoError(t, err)
	assert.False(t, updated.IsNew)
	assert.Equal(t, created.ID, updated.ID)

	var row models.Employee
	require.NoError(t, db.First(&row, created.ID).Error)
	assert.Equal(t, secondCompany, row.CompanyID)
	assert.Equal(t, secondCC, row.CostCenterID)
}

func TestUpsertEmployee_ClearsOptionalFields(t *testing.T) {
	db := setupSqliteDB(t)
	s := store.New(db)
	ctx := context.Background()

	companyID, err := s.UpsertCompany(ctx, "12345678000199", "Acme")
	require.NoError(t, err)
	ccID, err := s.UpsertCostCenter(ctx, "CC1", "Ops")
	require.NoError(t, err)

	emp := employeeFixture()
	emp.CompanyID = companyID
	emp.CostCenterID = ccID
	_, err = s.UpsertEmployee(ctx, emp)
	require.NoError(t, err)

	// The source dropped the optional fields; they must clear, not persist.
	emp.Role = ""
	emp.Registration = ""
	_, err = s.UpsertEmployee(ctx, emp)
	require.NoError(t, err)

	var row models.Employee
	require.NoError(t, db.Where("cpf = ?", emp.CPF).First(&row).Error)
	assert.Empty(t, row.Role)
	assert.Empty(t, row.Registration)
}
