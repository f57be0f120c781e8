package service_test

import (
	"context"
	"testing"
	"time"

	"compras/internal/service"
	"compras/internal/workflow"
)

func TestStatistics_CountsAndRanksFinalizedSpend(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	stats := service.NewStatisticsService(e.store.Solicitacoes(), e.store.Cotacoes())

	sol, alfa, beta := twoSupplierQuotes(t, e)
	e.createRequest(t)

	_, err := e.cotacoes.Finalize(ctx, sol.ID.String(), service.FinalizeRequest{
		SelectedItems: []service.SelectedItem{
			{CotacaoItemID: alfa.Itens[0].ID.String()},
			{CotacaoItemID: beta.Itens[1].ID.String()},
		},
	})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	now := time.Now()
	res, err := stats.GetStatistics(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if res.Solicitacoes != 2 {
		t.Fatalf("expected 2 requests, got %d", res.Solicitacoes)
	}
	if res.PorStatus[workflow.StatusSolicitado] != 1 || res.PorStatus[workflow.StatusAprovadoParaCompra] != 1 {
		t.Fatalf("unexpected status counts %v", res.PorStatus)
	}
	if res.Finalizacoes != 1 || !res.TotalFinalizado.Equal(money("252.00")) {
		t.Fatalf("expected one finalization of 252.00, got %d / %s", res.Finalizacoes, res.TotalFinalizado)
	}
	if len(res.TopFornecedores) != 2 || res.TopFornecedores[0].Fornecedor != "Alfa Peças" {
		t.Fatalf("Alfa (240.00) should rank above Beta (12.00), got %+v", res.TopFornecedores)
	}
	if !res.TopFornecedores[1].Total.Equal(money("12.00")) {
		t.Fatalf("unexpected Beta total %s", res.TopFornecedores[1].Total)
	}
}

func TestStatistics_WindowExcludesOlderActivity(t *testing.T) {
	e := newEnv(t)
	stats := service.NewStatisticsService(e.store.Solicitacoes(), e.store.Cotacoes())
	e.createRequest(t)

	future := time.Now().Add(24 * time.Hour)
	res, err := stats.GetStatistics(context.Background(), future, future.Add(time.Hour))
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if res.Solicitacoes != 0 || res.Finalizacoes != 0 || len(res.TopFornecedores) != 0 {
		t.Fatalf("expected an empty window, got %+v", res)
	}
}

func TestStatistics_RejectsInvertedWindow(t *testing.T) {
	e := newEnv(t)
	stats := service.NewStatisticsService(e.store.Solicitacoes(), e.store.Cotacoes())

	now := time.Now()
	_, err := stats.GetStatistics(context.Background(), now, now.Add(-time.Hour))
	assertErr(t, err, service.ErrValidation)
}
