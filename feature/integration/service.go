package integration

import (
	"context"
	"errors"
	"time"

	"hr-sync/feature/integration/models"
	"hr-sync/feature/integration/source"
	"hr-sync/feature/integration/store"
	"hr-sync/feature/integration/validate"
	"hr-sync/feature/report"

	"go.uber.org/zap"
)

// Store is the subset of reconciliation operations the orchestrator drives.
type Store interface {
	UpsertCompany(ctx context.Context, cnpj, name string) (uint, error)
	UpsertCostCenter(ctx context.Context, identifier, name string) (uint, error)
	UpsertEmployee(ctx context.Context, emp models.Employee) (store.EmployeeResult, error)
}

// Service orchestrates one integration run end to end.
type Service struct {
	source source.Client
	store  Store
	sink   report.Sink
	logger *zap.Logger
}

// NewService wires the pipeline together.
func NewService(src source.Client, st Store, sink report.Sink, logger *zap.Logger) *Service {
	return &Service{
		source: src,
		store:  st,
		sink:   sink,
		logger: logger,
	}
}

// Run executes one fetch-validate-reconcile-report cycle.
//
// The returned report is always complete and already handed to the sink.
// A non-nil error is either the fatal source failure or, for an otherwise
// successful run, a secondary sink failure; per-record problems never
// surface as errors, only inside the report.
func (s *Service) Run(ctx context.Context) (*models.RunReport, error) {
	rep := &models.RunReport{
		StartTime: time.Now(),
		Errors:    []models.RunError{},
	}

	s.logger.Info("Starting integration run")

	colaboradores, err := s.source.FetchColaboradores(ctx)
	if err != nil {
		rep.Errors = append(rep.Errors, models.RunError{Message: err.Error()})
		rep.Finalize(time.Now())
		if sinkErr := s.sink.Write(ctx, rep); sinkErr != nil {
			s.logger.Error("Failed to emit report for failed run", zap.Error(sinkErr))
		}
		return rep, err
	}

	rep.Processed = len(colaboradores)

	for i := range colaboradores {
		rec := colaboradores[i]

		isNew, err := s.processColaborador(ctx, rec)
		if err != nil {
			var invalid *validate.InvalidError
			if errors.As(err, &invalid) {
				rep.Skipped++
			}
			rep.Errors = append(rep.Errors, models.RunError{
				Colaborador: &rec,
				Message:     err.Error(),
			})
			s.logger.Error("Failed to process colaborador",
				zap.String("cpf", rec.CPF),
				zap.Error(err))
			continue
		}

		if isNew {
			rep.Inserted++
		} else {
			rep.Updated++
		}
	}

	rep.Finalize(time.Now())

	s.logger.Info("Integration run finished",
		zap.Int("processed", rep.Processed),
		zap.Int("inserted", rep.Inserted),
		zap.Int("updated", rep.Updated),
		zap.Int("skipped", rep.Skipped),
		zap.Int("errors", len(rep.Errors)))

	// The run is complete either way; a sink failure is reported to the
	// caller without invalidating the report.
	if err := s.sink.Write(ctx, rep); err != nil {
		return rep, err
	}
	return rep, nil
}

// processColaborador reconciles a single record: validation, then the
// company, cost-center and employee upserts in that order. It reports whether
// the employee row was newly inserted.
func (s *Service) processColaborador(ctx context.Context, rec models.Colaborador) (bool, error) {
	if err := validate.Record(rec); err != nil {
		return false, err
	}

	companyID, err := s.store.UpsertCompany(ctx, rec.EmpresaCNPJ, rec.EmpresaNome)
	if err != nil {
		return false, err
	}

	costCenterID, err := s.store.UpsertCostCenter(ctx, rec.CentroCustoIdentificador, rec.CentroCustoNome)
	if err != nil {
		return false, err
	}

	result, err := s.store.UpsertEmployee(ctx, models.Employee{
		CPF:          rec.CPF,
		Username:     rec.Usuario,
		FirstName:    rec.Nome,
		LastName:     rec.Sobrenome,
		Role:         rec.Cargo,
		Registration: rec.Matricula,
		CompanyID:    companyID,
		CostCenterID: costCenterID,
	})
	if err != nil {
		return false, err
	}

	return result.IsNew, nil
}
