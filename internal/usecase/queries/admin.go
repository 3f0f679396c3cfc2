package queries

import (
	"foodai-api/internal/domain/catalog"
	"foodai-api/internal/domain/offer"
	"foodai-api/internal/domain/report"
	"foodai-api/internal/pkg/clock"
)

// AdminQueries builds the dashboard payloads. The figures are a reporting
// stub drawn fresh per load, not a view over recorded clickouts.
type AdminQueries interface {
	Overview() report.Overview
	Providers() []report.ProviderReport
	Clickouts() []report.ClickoutRow
	Commissions() []report.CommissionRow
}

const (
	adminClickoutRows   = 20
	adminCommissionRows = 15
)

type adminQueriesImpl struct {
	gen     *offer.Generator
	cat     catalog.Catalog
	builder *report.Builder
	clock   clock.Clock
}

func NewAdminQueries(gen *offer.Generator, cat catalog.Catalog, builder *report.Builder, clk clock.Clock) AdminQueries {
	return &adminQueriesImpl{gen: gen, cat: cat, builder: builder, clock: clk}
}

func (q *adminQueriesImpl) Overview() report.Overview {
	return q.builder.Overview(q.gen.Generate(), q.clock.Now())
}

func (q *adminQueriesImpl) Providers() []report.ProviderReport {
	return q.builder.Providers(q.cat.Providers, q.gen.Generate())
}

func (q *adminQueriesImpl) Clickouts() []report.ClickoutRow {
	return q.builder.Clickouts(q.gen.Generate(), q.clock.Now(), adminClickoutRows)
}

func (q *adminQueriesImpl) Commissions() []report.CommissionRow {
	return q.builder.Commissions(q.gen.Generate(), q.clock.Now(), adminCommissionRows)
}
