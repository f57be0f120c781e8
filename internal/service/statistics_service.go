package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"compras/internal/repository"
	"compras/internal/workflow"

	"github.com/shopspring/decimal"
)

const topFornecedores = 5

// FornecedorRanking is one supplier's share of the finalized spend
type FornecedorRanking struct {
	FornecedorID string          `json:"fornecedor_id"`
	Fornecedor   string          `json:"fornecedor"`
	Itens        int             `json:"itens"`
	Total        decimal.Decimal `json:"total" swaggertype:"string"`
}

// StatisticsResponse summarises purchasing activity inside a time window
type StatisticsResponse struct {
	TimeRangeStartDate time.Time               `json:"time_range_start_date"`
	TimeRangeEndDate   time.Time               `json:"time_range_end_date"`
	Solicitacoes       int                     `json:"solicitacoes"`
	PorStatus          map[workflow.Status]int `json:"por_status" swaggertype:"object"`
	Finalizacoes       int                     `json:"finalizacoes"`
	TotalFinalizado    decimal.Decimal         `json:"total_finalizado" swaggertype:"string"`
	TopFornecedores    []FornecedorRanking     `json:"top_fornecedores"`
}

type StatisticsService interface {
	GetStatistics(ctx context.Context, startDate, endDate time.Time) (StatisticsResponse, error)
}

type statisticsService struct {
	solicitacoes repository.SolicitacaoRepository
	cotacoes     repository.CotacaoRepository
}

func NewStatisticsService(solicitacoes repository.SolicitacaoRepository, cotacoes repository.CotacaoRepository) StatisticsService {
	return &statisticsService{solicitacoes: solicitacoes, cotacoes: cotacoes}
}

// GetStatistics counts requests raised and sums spend finalized between the two dates
func (s *statisticsService) GetStatistics(ctx context.Context, startDate, endDate time.Time) (StatisticsResponse, error) {
	res := StatisticsResponse{
		TimeRangeStartDate: startDate,
		TimeRangeEndDate:   endDate,
		PorStatus:          make(map[workflow.Status]int),
		TotalFinalizado:    decimal.Zero,
		TopFornecedores:    []FornecedorRanking{},
	}
	if endDate.Before(startDate) {
		return res, validationError("end_date deve ser posterior a start_date")
	}

	list, err := s.solicitacoes.List(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list solicitacoes: %w", err)
	}
	for _, sol := range list {
		if sol.DataSolicitacao.Before(startDate) || sol.DataSolicitacao.After(endDate) {
			continue
		}
		res.Solicitacoes++
		res.PorStatus[sol.Status]++
	}

	finals, err := s.cotacoes.ListFinalizacoes(ctx, startDate, endDate)
	if err != nil {
		return res, fmt.Errorf("failed to list finalizacoes: %w", err)
	}
	ranking := make(map[string]*FornecedorRanking)
	for _, f := range finals {
		res.Finalizacoes++
		res.TotalFinalizado = res.TotalFinalizado.Add(f.ValorTotal)
		for _, it := range f.Itens {
			key := it.FornecedorID.String()
			r, ok := ranking[key]
			if !ok {
				r = &FornecedorRanking{FornecedorID: key, Fornecedor: it.Fornecedor, Total: decimal.Zero}
				ranking[key] = r
			}
			r.Itens++
			r.Total = r.Total.Add(it.Subtotal)
		}
	}

	for _, r := range ranking {
		res.TopFornecedores = append(res.TopFornecedores, *r)
	}
	sort.Slice(res.TopFornecedores, func(i, j int) bool {
		a, b := res.TopFornecedores[i], res.TopFornecedores[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Fornecedor < b.Fornecedor
	})
	if len(res.TopFornecedores) > topFornecedores {
		res.TopFornecedores = res.TopFornecedores[:topFornecedores]
	}
	return res, nil
}
