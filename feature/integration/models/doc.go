// Package models defines the data shapes of the integration feature.
//
// It contains three kinds of types:
//
//  1. Colaborador: the raw employee record as delivered by the remote HR API
//     (Portuguese field names are the wire contract).
//  2. Company, CostCenter, Employee: the persisted entities, keyed by their
//     business identifiers (CNPJ, cost-center identifier, CPF) with referential
//     links from Employee to the other two.
//  3. RunReport / RunError: the ephemeral per-run outcome aggregate handed to
//     the report sinks.
package models
