package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"compras/internal/comparison"
	"compras/internal/model"
	"compras/internal/notification"
	"compras/internal/repository"
	"compras/internal/workflow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// --- DTOs ---

type CotacaoItemInput struct {
	ItemID        string          `json:"item_id"` // request item this line answers
	Descricao     string          `json:"descricao"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario" swaggertype:"string" example:"120.00"`
}

type CreateCotacaoRequest struct {
	SolicitacaoID  string               `json:"solicitacao_id" binding:"required"`
	FornecedorID   string               `json:"fornecedor_id"`
	Fornecedor     string               `json:"fornecedor"` // legacy lookup by name when fornecedor_id is absent
	Preco          *decimal.Decimal     `json:"preco" swaggertype:"string" example:"510.00"`
	PrazoEntrega   string               `json:"prazo_entrega"`
	Condicoes      string               `json:"condicoes"`
	NivelAprovacao model.NivelAprovacao `json:"nivel_aprovacao" swaggertype:"string" example:"Gerência"`
	Itens          []CotacaoItemInput   `json:"itens"`
}

type UpdateCotacaoStatusRequest struct {
	Status         string               `json:"status" binding:"required,oneof=Pendente Aprovado Rejeitado"`
	AprovadoPor    string               `json:"aprovado_por"`
	NivelAprovacao model.NivelAprovacao `json:"nivel_aprovacao" swaggertype:"string" example:"Gerência"`
}

type SelectedItem struct {
	CotacaoItemID string `json:"cotacao_item_id"`
}

type FinalizeRequest struct {
	SelectedItems []SelectedItem `json:"selectedItems"`
	FinalizadoPor string         `json:"finalizado_por"`
}

type FinalizeResponse struct {
	Finalizacao  *model.Finalizacao         `json:"finalizacao"`
	Total        decimal.Decimal            `json:"total" swaggertype:"string"`
	Fornecedores []comparison.SupplierGroup `json:"fornecedores"`
	Status       workflow.Status            `json:"status" swaggertype:"string"`
}

// ComparisonOffer is one supplier's price for one item
type ComparisonOffer struct {
	CotacaoItemID string          `json:"cotacao_item_id"`
	CotacaoID     string          `json:"cotacao_id"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario" swaggertype:"string"`
	Subtotal      decimal.Decimal `json:"subtotal" swaggertype:"string"`
	MelhorPreco   bool            `json:"melhor_preco"`
	Selecionado   bool            `json:"selecionado"`
}

type ComparisonRow struct {
	ItemKey   string                      `json:"item_key"`
	Descricao string                      `json:"descricao"`
	Ofertas   map[string]*ComparisonOffer `json:"ofertas"` // keyed by fornecedor_id
}

type ComparisonSupplier struct {
	FornecedorID string          `json:"fornecedor_id"`
	Fornecedor   string          `json:"fornecedor"`
	Total        decimal.Decimal `json:"total" swaggertype:"string"`
}

type ComparisonView struct {
	SolicitacaoID    string               `json:"solicitacao_id"`
	Status           workflow.Status      `json:"status" swaggertype:"string"`
	Fornecedores     []ComparisonSupplier `json:"fornecedores"`
	Itens            []ComparisonRow      `json:"itens"`
	TotalSelecionado decimal.Decimal      `json:"total_selecionado" swaggertype:"string"`
	Finalizacao      *model.Finalizacao   `json:"finalizacao,omitempty"`
}

// --- Interface ---

type CotacaoService interface {
	Create(ctx context.Context, req CreateCotacaoRequest) (*model.Cotacao, error)
	List(ctx context.Context) ([]model.Cotacao, error)
	ListAwaitingQuotes(ctx context.Context) ([]model.Solicitacao, error)
	UpdateStatus(ctx context.Context, id string, req UpdateCotacaoStatusRequest) (*model.Cotacao, error)
	Compare(ctx context.Context, solicitacaoID string) (*ComparisonView, error)
	Finalize(ctx context.Context, solicitacaoID string, req FinalizeRequest) (*FinalizeResponse, error)
}

type cotacaoService struct {
	tx           repository.TransactionManager
	solicitacoes repository.SolicitacaoRepository
	cotacoes     repository.CotacaoRepository
	fornecedores repository.FornecedorRepository
	audit        auditor
	notifier     notification.Notifier
	now          func() time.Time
}

func NewCotacaoService(
	tx repository.TransactionManager,
	solicitacoes repository.SolicitacaoRepository,
	cotacoes repository.CotacaoRepository,
	fornecedores repository.FornecedorRepository,
	auditRepo repository.AuditRepository,
	notifier notification.Notifier,
) CotacaoService {
	if notifier == nil {
		notifier = notification.Nop{}
	}
	return &cotacaoService{
		tx:           tx,
		solicitacoes: solicitacoes,
		cotacoes:     cotacoes,
		fornecedores: fornecedores,
		audit:        auditor{repo: auditRepo},
		notifier:     notifier,
		now:          time.Now,
	}
}

// --- Implementation ---

func (s *cotacaoService) resolveFornecedor(ctx context.Context, req CreateCotacaoRequest) (*model.Fornecedor, error) {
	if req.FornecedorID != "" {
		id, err := uuid.Parse(req.FornecedorID)
		if err != nil {
			return nil, validationError("fornecedor_id inválido")
		}
		f, err := s.fornecedores.FindByID(ctx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return nil, validationError("fornecedor não cadastrado")
			}
			return nil, err
		}
		return f, nil
	}

	nome := strings.TrimSpace(req.Fornecedor)
	if nome == "" {
		return nil, validationError("fornecedor_id é obrigatório")
	}
	f, err := s.fornecedores.FindByNome(ctx, nome)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, validationError("fornecedor %q não cadastrado", nome)
		}
		return nil, err
	}
	return f, nil
}

func buildItens(sol *model.Solicitacao, inputs []CotacaoItemInput) ([]model.CotacaoItem, decimal.Decimal, error) {
	byID := make(map[uuid.UUID]model.Item, len(sol.Itens))
	byName := make(map[string][]model.Item, len(sol.Itens))
	for _, it := range sol.Itens {
		byID[it.ID] = it
		name := strings.TrimSpace(it.Descricao)
		byName[name] = append(byName[name], it)
	}

	total := decimal.Zero
	itens := make([]model.CotacaoItem, 0, len(inputs))
	for i, in := range inputs {
		line := model.CotacaoItem{
			Descricao:     strings.TrimSpace(in.Descricao),
			Quantidade:    in.Quantidade,
			PrecoUnitario: in.PrecoUnitario,
		}
		var (
			ref   model.Item
			found bool
		)
		if in.ItemID != "" {
			id, err := uuid.Parse(in.ItemID)
			if err != nil {
				return nil, decimal.Zero, validationError("item %d: item_id inválido", i+1)
			}
			if ref, found = byID[id]; !found {
				return nil, decimal.Zero, validationError("item %d: item não pertence à solicitação", i+1)
			}
		} else if line.Descricao != "" {
			// a line named after a requested item must share that item's comparison row
			switch matches := byName[line.Descricao]; len(matches) {
			case 0:
			case 1:
				ref, found = matches[0], true
			default:
				return nil, decimal.Zero, validationError("item %d: a solicitação tem %d itens %q, informe item_id", i+1, len(matches), line.Descricao)
			}
		}
		if found {
			id := ref.ID
			line.ItemID = &id
			if line.Descricao == "" {
				line.Descricao = ref.Descricao
			}
			if line.Quantidade == 0 {
				line.Quantidade = ref.Quantidade
			}
		}
		if line.Descricao == "" {
			return nil, decimal.Zero, validationError("item %d: descricao é obrigatória", i+1)
		}
		if line.Quantidade < 1 {
			return nil, decimal.Zero, validationError("item %d: quantidade deve ser maior que zero", i+1)
		}
		if line.PrecoUnitario.IsNegative() {
			return nil, decimal.Zero, validationError("item %d: preco_unitario não pode ser negativo", i+1)
		}
		total = total.Add(line.Subtotal())
		itens = append(itens, line)
	}
	return itens, total, nil
}

func (s *cotacaoService) Create(ctx context.Context, req CreateCotacaoRequest) (*model.Cotacao, error) {
	solID, err := parseID(req.SolicitacaoID, "solicitação")
	if err != nil {
		return nil, err
	}
	fornecedor, err := s.resolveFornecedor(ctx, req)
	if err != nil {
		return nil, err
	}
	if !req.NivelAprovacao.Valid() {
		return nil, validationError("nivel_aprovacao inválido")
	}

	sol, err := s.solicitacoes.FindByIDWithRelations(ctx, solID)
	if err != nil {
		return nil, mapRepoError(err, "solicitação")
	}

	cotacao := &model.Cotacao{
		SolicitacaoID:  solID,
		FornecedorID:   fornecedor.ID,
		Fornecedor:     fornecedor.Nome,
		PrazoEntrega:   req.PrazoEntrega,
		Condicoes:      req.Condicoes,
		NivelAprovacao: req.NivelAprovacao,
		Status:         model.CotacaoPendente,
	}
	if len(req.Itens) > 0 {
		itens, total, err := buildItens(sol, req.Itens)
		if err != nil {
			return nil, err
		}
		cotacao.Itens = itens
		cotacao.Preco = total
	} else {
		if req.Preco == nil {
			return nil, validationError("informe preco ou os itens da cotação")
		}
		if req.Preco.IsNegative() {
			return nil, validationError("preco não pode ser negativo")
		}
		cotacao.Preco = *req.Preco
	}

	var advanced bool
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.solicitacoes.FindByIDForUpdate(txCtx, solID)
		if err != nil {
			return mapRepoError(err, "solicitação")
		}
		if current.Status.Terminal() {
			return validationError("solicitação %s não aceita cotações", strings.ToLower(string(current.Status)))
		}

		if err := s.cotacoes.Create(txCtx, cotacao); err != nil {
			return fmt.Errorf("failed to create cotacao: %w", mapRepoError(err, "cotação"))
		}

		if current.Status == workflow.StatusAprovado {
			next, err := workflow.Transition(current.Status, workflow.EventIniciarCotacao)
			if err != nil {
				return err
			}
			advanced, err = s.solicitacoes.UpdateStatusIf(txCtx, solID, current.Status, next)
			if err != nil {
				return fmt.Errorf("failed to advance solicitacao: %w", err)
			}
		}

		return s.audit.record(txCtx, model.ActionCreateCotacao, cotacao.ID.String(), cotacao.Fornecedor, map[string]interface{}{
			"solicitacao_id": solID,
			"preco":          cotacao.Preco,
			"itens":          len(cotacao.Itens),
			"em_cotacao":     advanced,
		})
	})
	if err != nil {
		return nil, err
	}

	ev := notification.Event{
		Type:          notification.EventCotacaoCriada,
		SolicitacaoID: solID.String(),
		Fornecedor:    cotacao.Fornecedor,
		Valor:         &cotacao.Preco,
		OcorridoEm:    s.now(),
	}
	if sol.SolicitanteID != nil {
		ev.SolicitanteID = sol.SolicitanteID.String()
	}
	s.notifier.Notify(ctx, ev)
	if advanced {
		ev.Type = notification.EventStatusAlterado
		ev.StatusAnterior = string(workflow.StatusAprovado)
		ev.StatusNovo = string(workflow.StatusEmCotacao)
		ev.Etapa = string(workflow.EtapaCotacao)
		s.notifier.Notify(ctx, ev)
	}

	return cotacao, nil
}

func (s *cotacaoService) List(ctx context.Context) ([]model.Cotacao, error) {
	list, err := s.cotacoes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cotacoes: %w", err)
	}
	if list == nil {
		list = []model.Cotacao{}
	}
	return list, nil
}

func (s *cotacaoService) ListAwaitingQuotes(ctx context.Context) ([]model.Solicitacao, error) {
	list, err := s.solicitacoes.List(ctx, workflow.StatusAprovado, workflow.StatusEmCotacao)
	if err != nil {
		return nil, fmt.Errorf("failed to list solicitacoes: %w", err)
	}
	if list == nil {
		list = []model.Solicitacao{}
	}
	return list, nil
}

func (s *cotacaoService) UpdateStatus(ctx context.Context, id string, req UpdateCotacaoStatusRequest) (*model.Cotacao, error) {
	cotID, err := parseID(id, "cotação")
	if err != nil {
		return nil, err
	}

	data := &ApprovalData{AprovadoPor: req.AprovadoPor, NivelAprovacao: req.NivelAprovacao}
	fillApprover(ctx, data)

	var (
		cotacao  *model.Cotacao
		sol      *model.Solicitacao
		advanced bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		cotacao, err = s.cotacoes.FindByID(txCtx, cotID)
		if err != nil {
			return mapRepoError(err, "cotação")
		}
		sol, err = s.solicitacoes.FindByIDForUpdate(txCtx, cotacao.SolicitacaoID)
		if err != nil {
			return mapRepoError(err, "solicitação")
		}
		if sol.Status.Terminal() {
			return validationError("solicitação %s não aceita alterações de cotação", strings.ToLower(string(sol.Status)))
		}

		switch req.Status {
		case model.CotacaoAprovado:
			if err := checkApproval(txCtx, workflow.EventAprovarCompra, workflow.EtapaCotacao, data); err != nil {
				return err
			}
		case model.CotacaoRejeitado:
			if strings.TrimSpace(data.AprovadoPor) == "" {
				return validationError("aprovado_por é obrigatório")
			}
			fin, err := s.cotacoes.FindFinalizacao(txCtx, sol.ID)
			if err != nil && !repository.IsNotFound(err) {
				return fmt.Errorf("failed to load finalizacao: %w", err)
			}
			if fin != nil {
				for _, it := range fin.Itens {
					if it.CotacaoID == cotacao.ID {
						return validationError("cotação faz parte da finalização; finalize novamente sem ela antes de rejeitar")
					}
				}
			}
		}

		cotacao.Status = req.Status
		cotacao.AprovadoPor = strings.TrimSpace(data.AprovadoPor)
		cotacao.NivelAprovacao = data.NivelAprovacao
		if req.Status == model.CotacaoPendente {
			cotacao.AprovadoPor = ""
		}
		if err := s.cotacoes.Update(txCtx, cotacao); err != nil {
			return fmt.Errorf("failed to update cotacao: %w", mapRepoError(err, "cotação"))
		}

		if req.Status == model.CotacaoAprovado && sol.Status == workflow.StatusEmCotacao {
			next, err := workflow.Transition(sol.Status, workflow.EventAprovarCompra)
			if err != nil {
				return err
			}
			if advanced, err = s.solicitacoes.UpdateStatusIf(txCtx, sol.ID, sol.Status, next); err != nil {
				return fmt.Errorf("failed to advance solicitacao: %w", err)
			}
			if advanced {
				if err := s.solicitacoes.AddAprovacao(txCtx, &model.Aprovacao{
					SolicitacaoID:  sol.ID,
					Etapa:          workflow.EtapaCotacao,
					Status:         model.AprovacaoAprovado,
					AprovadoPor:    cotacao.AprovadoPor,
					NivelAprovacao: cotacao.NivelAprovacao,
					DataAprovacao:  s.now(),
				}); err != nil {
					return fmt.Errorf("failed to log approval: %w", err)
				}
			}
		}

		return s.audit.record(txCtx, model.ActionUpdateCotacao, cotacao.ID.String(), cotacao.Fornecedor, map[string]interface{}{
			"status":               cotacao.Status,
			"aprovado_por":         cotacao.AprovadoPor,
			"aprovado_para_compra": advanced,
		})
	})
	if err != nil {
		return nil, err
	}

	ev := notification.Event{
		Type:          notification.EventCotacaoAvaliada,
		SolicitacaoID: sol.ID.String(),
		Fornecedor:    cotacao.Fornecedor,
		StatusNovo:    cotacao.Status,
		Por:           cotacao.AprovadoPor,
		Valor:         &cotacao.Preco,
		OcorridoEm:    s.now(),
	}
	if sol.SolicitanteID != nil {
		ev.SolicitanteID = sol.SolicitanteID.String()
	}
	s.notifier.Notify(ctx, ev)
	if advanced {
		ev.Type = notification.EventStatusAlterado
		ev.StatusAnterior = string(workflow.StatusEmCotacao)
		ev.StatusNovo = string(workflow.StatusAprovadoParaCompra)
		ev.Etapa = string(workflow.EtapaCotacao)
		s.notifier.Notify(ctx, ev)
	}

	return cotacao, nil
}

// openQuotes drops rejected quotes, which cannot win an item
func openQuotes(quotes []model.Cotacao) []model.Cotacao {
	out := make([]model.Cotacao, 0, len(quotes))
	for _, q := range quotes {
		if q.Status != model.CotacaoRejeitado {
			out = append(out, q)
		}
	}
	return out
}

func lineKey(ci model.CotacaoItem) string {
	if ci.ItemID != nil {
		return ci.ItemID.String()
	}
	return ""
}

func buildComparison(quotes []model.Cotacao) *comparison.Comparison {
	input := make([]comparison.SupplierQuote, 0, len(quotes))
	for _, q := range quotes {
		sq := comparison.SupplierQuote{SupplierID: q.FornecedorID.String(), SupplierName: q.Fornecedor}
		for _, ci := range q.Itens {
			sq.Items = append(sq.Items, comparison.LineItem{
				ID:       ci.ID.String(),
				QuoteID:  q.ID.String(),
				ItemKey:  lineKey(ci),
				ItemName: ci.Descricao,
				Quantity: ci.Quantidade,
				Price:    ci.PrecoUnitario,
			})
		}
		input = append(input, sq)
	}
	return comparison.New(input)
}

func (s *cotacaoService) Compare(ctx context.Context, solicitacaoID string) (*ComparisonView, error) {
	solID, err := parseID(solicitacaoID, "solicitação")
	if err != nil {
		return nil, err
	}
	sol, err := s.solicitacoes.FindByIDWithRelations(ctx, solID)
	if err != nil {
		return nil, mapRepoError(err, "solicitação")
	}

	cmp := buildComparison(openQuotes(sol.Cotacoes))
	if sol.Finalizacao != nil {
		for _, it := range sol.Finalizacao.Itens {
			if err := cmp.SelectLineItem(it.CotacaoItemID.String()); err != nil {
				return nil, fmt.Errorf("finalizacao %s out of sync with quotes: %w", sol.Finalizacao.ID, err)
			}
		}
	}

	view := &ComparisonView{
		SolicitacaoID:    solID.String(),
		Status:           sol.Status,
		Fornecedores:     []ComparisonSupplier{},
		Itens:            []ComparisonRow{},
		TotalSelecionado: cmp.SelectedTotal(),
		Finalizacao:      sol.Finalizacao,
	}

	seen := make(map[string]bool)
	for _, q := range cmp.Suppliers() {
		if seen[q.SupplierID] {
			continue
		}
		seen[q.SupplierID] = true
		view.Fornecedores = append(view.Fornecedores, ComparisonSupplier{
			FornecedorID: q.SupplierID,
			Fornecedor:   q.SupplierName,
			Total:        cmp.SupplierTotal(q.SupplierID),
		})
	}

	for _, key := range cmp.UniqueItems() {
		row := ComparisonRow{ItemKey: key, Descricao: cmp.ItemName(key), Ofertas: map[string]*ComparisonOffer{}}
		best, _ := cmp.BestOffer(key)
		selected, hasSelection := cmp.Selected(key)
		for _, f := range view.Fornecedores {
			line, ok := cmp.Cell(key, f.FornecedorID)
			if !ok {
				continue
			}
			row.Ofertas[f.FornecedorID] = &ComparisonOffer{
				CotacaoItemID: line.ID,
				CotacaoID:     line.QuoteID,
				Quantidade:    line.Quantity,
				PrecoUnitario: line.Price,
				Subtotal:      line.Subtotal(),
				MelhorPreco:   line.ID == best.ID,
				Selecionado:   hasSelection && selected.ID == line.ID,
			}
		}
		view.Itens = append(view.Itens, row)
	}

	return view, nil
}

func (s *cotacaoService) Finalize(ctx context.Context, solicitacaoID string, req FinalizeRequest) (*FinalizeResponse, error) {
	solID, err := parseID(solicitacaoID, "solicitação")
	if err != nil {
		return nil, err
	}
	if len(req.SelectedItems) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrValidation, comparison.ErrEmptySelection)
	}
	finalizadoPor := strings.TrimSpace(req.FinalizadoPor)
	if finalizadoPor == "" {
		if actor, ok := ActorFrom(ctx); ok {
			finalizadoPor = actor.Nome
		}
	}

	var (
		sol    *model.Solicitacao
		from   workflow.Status
		fin    *model.Finalizacao
		result comparison.Result
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		sol, err = s.solicitacoes.FindByIDForUpdate(txCtx, solID)
		if err != nil {
			return mapRepoError(err, "solicitação")
		}
		from = sol.Status
		if from != workflow.StatusEmCotacao && from != workflow.StatusAprovadoParaCompra {
			return &workflow.TransitionError{From: from, Event: workflow.EventAprovarCompra}
		}

		quotes, err := s.cotacoes.ListBySolicitacao(txCtx, solID)
		if err != nil {
			return fmt.Errorf("failed to load cotacoes: %w", err)
		}
		cmp := buildComparison(openQuotes(quotes))
		for _, sel := range req.SelectedItems {
			if err := cmp.SelectLineItem(sel.CotacaoItemID); err != nil {
				return validationError("%v: %s", err, sel.CotacaoItemID)
			}
		}
		result, err = cmp.Finalize()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}

		resumo, err := json.Marshal(result.BySupplier)
		if err != nil {
			return fmt.Errorf("failed to encode resumo: %w", err)
		}
		fin = &model.Finalizacao{
			SolicitacaoID: solID,
			ValorTotal:    result.Total,
			Resumo:        datatypes.JSON(resumo),
			FinalizadoPor: finalizadoPor,
		}
		for _, it := range cmp.Selection() {
			fin.Itens = append(fin.Itens, model.FinalizacaoItem{
				CotacaoItemID: uuid.MustParse(it.ID),
				CotacaoID:     uuid.MustParse(it.QuoteID),
				FornecedorID:  uuid.MustParse(it.SupplierID),
				Fornecedor:    it.SupplierName,
				ItemKey:       it.Key(),
				Descricao:     it.ItemName,
				Quantidade:    it.Quantity,
				PrecoUnitario: it.Price,
				Subtotal:      it.Subtotal(),
			})
		}
		if err := s.cotacoes.ReplaceFinalizacao(txCtx, fin); err != nil {
			return fmt.Errorf("failed to save finalizacao: %w", mapRepoError(err, "solicitação"))
		}

		if from == workflow.StatusEmCotacao {
			next, err := workflow.Transition(from, workflow.EventAprovarCompra)
			if err != nil {
				return err
			}
			ok, err := s.solicitacoes.UpdateStatusIf(txCtx, solID, from, next)
			if err != nil {
				return fmt.Errorf("failed to advance solicitacao: %w", err)
			}
			if !ok {
				return errors.New("solicitação alterada concorrentemente")
			}
			sol.Status = next
		}

		return s.audit.record(txCtx, model.ActionFinalizeCotacao, solID.String(), sol.NomeSolicitante, map[string]interface{}{
			"valor_total": result.Total,
			"itens":       len(fin.Itens),
			"status":      sol.Status,
		})
	})
	if err != nil {
		return nil, err
	}

	ev := notification.Event{
		Type:          notification.EventCompraFinalizada,
		SolicitacaoID: solID.String(),
		Por:           finalizadoPor,
		Valor:         &result.Total,
		OcorridoEm:    s.now(),
	}
	if sol.SolicitanteID != nil {
		ev.SolicitanteID = sol.SolicitanteID.String()
	}
	s.notifier.Notify(ctx, ev)
	if from != sol.Status {
		ev.Type = notification.EventStatusAlterado
		ev.StatusAnterior = string(from)
		ev.StatusNovo = string(sol.Status)
		ev.Etapa = string(workflow.EtapaCotacao)
		s.notifier.Notify(ctx, ev)
	}

	return &FinalizeResponse{
		Finalizacao:  fin,
		Total:        result.Total,
		Fornecedores: result.BySupplier,
		Status:       sol.Status,
	}, nil
}
