package models

import "time"

// Colaborador is one raw employee record from the remote HR API.
type Colaborador struct {
	CPF                      string `json:"cpf"`
	Usuario                  string `json:"usuario"`
	Nome                     string `json:"nome"`
	Sobrenome                string `json:"sobrenome"`
	Cargo                    string `json:"cargo,omitempty"`
	Matricula                string `json:"matricula,omitempty"`
	EmpresaCNPJ              string `json:"empresa_cnpj"`
	EmpresaNome              string `json:"empresa_nome"`
	CentroCustoIdentificador string `json:"centro_custo_identificador"`
	CentroCustoNome          string `json:"centro_custo_nome"`
}

// Company is an employer referenced by employee records.
// Created on first reference, renamed on later references, never deleted here.
type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CNPJ      string    `gorm:"size:14;uniqueIndex;not null" json:"cnpj"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName maps Company to the companies table.
func (Company) TableName() string { return "companies" }

// CostCenter is a cost allocation unit referenced by employee records.
type CostCenter struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Identifier string    `gorm:"size:100;uniqueIndex;not null" json:"identifier"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName maps CostCenter to the cost_centers table.
func (CostCenter) TableName() string { return "cost_centers" }

// Employee is the persisted employee row. CPF is the natural key; both
// references must resolve before a row is ever written.
type Employee struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CPF          string    `gorm:"size:11;uniqueIndex;not null" json:"cpf"`
	Username     string    `gorm:"size:255;not null" json:"username"`
	FirstName    string    `gorm:"size:255;not null" json:"first_name"`
	LastName     string    `gorm:"size:255;not null" json:"last_name"`
	Role         string    `gorm:"size:255" json:"role,omitempty"`
	Registration string    `gorm:"size:50" json:"registration,omitempty"`
	CompanyID    uint      `gorm:"not null" json:"company_id"`
	Company      Company   `gorm:"foreignKey:CompanyID" json:"-"`
	CostCenterID uint      `gorm:"not null" json:"cost_center_id"`
	CostCenter   CostCenter `gorm:"foreignKey:CostCenterID" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName maps Employee to the employees table.
func (Employee) TableName() string { return "employees" }

// RunError records one failed record inside a run.
type RunError struct {
	// Colaborador is the offending record, nil for run-level failures
	// (source fetch exhaustion).
	Colaborador *Colaborador `json:"colaborador,omitempty"`
	// Message is the failure description.
	Message string `json:"error"`
}

// RunReport aggregates the outcome of a single integration run.
// It is created at run start, folded over the input records and finalized
// (EndTime set) before being handed to the report sinks. It is never persisted
// by the pipeline itself.
type RunReport struct {
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Processed int        `json:"processed"`
	Inserted  int        `json:"inserted"`
	Updated   int        `json:"updated"`
	Skipped   int        `json:"skipped"`
	Errors    []RunError `json:"errors"`
}

// Finalize stamps the end time.
func (r *RunReport) Finalize(now time.Time) {
	r.EndTime = &now
}

// Duration returns the run duration, zero while the run is unfinished.
func (r *RunReport) Duration() time.Duration {
	if r.EndTime == nil {
		return 0
	}
	return r.EndTime.Sub(r.StartTime)
}

// SuccessRate returns the share of processed records without an error entry,
// in percent. A run with no records reports zero.
func (r *RunReport) SuccessRate() float64 {
	if r.Processed == 0 {
		return 0
	}
	return float64(r.Processed-len(r.Errors)) / float64(r.Processed) * 100
}
