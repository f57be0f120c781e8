package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"compras/internal/model"
	"compras/internal/notification"
	"compras/internal/repository"
	"compras/internal/workflow"

	"github.com/google/uuid"
)

// --- DTOs ---

type SolicitacaoData struct {
	NomeSolicitante string `json:"nome_solicitante"`
	SolicitanteID   string `json:"solicitante_id"`
	Aplicacao       string `json:"aplicacao"`
	CentroCusto     string `json:"centro_custo"`
	LocalEntrega    string `json:"local_entrega"`
	PrazoEntrega    string `json:"prazo_entrega"` // YYYY-MM-DD
	Categoria       string `json:"categoria"`
	Motivo          string `json:"motivo"`
	Prioridade      string `json:"prioridade"`
}

type ItemInput struct {
	Descricao     string `json:"descricao"`
	Quantidade    int    `json:"quantidade"`
	IDSolicitante string `json:"id_solicitante"`
}

type CreateSolicitacaoRequest struct {
	RequestData SolicitacaoData `json:"requestData"`
	Items       []ItemInput     `json:"items"`
}

type ApprovalData struct {
	AprovadoPor    string               `json:"aprovado_por"`
	NivelAprovacao model.NivelAprovacao `json:"nivel_aprovacao" swaggertype:"string" example:"Supervisão"`
	MotivoRejeicao string               `json:"motivo_rejeicao"`
}

type UpdateStatusRequest struct {
	Status       string        `json:"status" binding:"required"`
	ApprovalData *ApprovalData `json:"approvalData"`
}

// --- Interface ---

type SolicitacaoService interface {
	Create(ctx context.Context, req CreateSolicitacaoRequest) (*model.Solicitacao, error)
	Get(ctx context.Context, id string) (*model.Solicitacao, error)
	List(ctx context.Context, status string) ([]model.Solicitacao, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*model.Solicitacao, error)
}

type solicitacaoService struct {
	tx       repository.TransactionManager
	repo     repository.SolicitacaoRepository
	audit    auditor
	notifier notification.Notifier
	now      func() time.Time
}

func NewSolicitacaoService(
	tx repository.TransactionManager,
	repo repository.SolicitacaoRepository,
	auditRepo repository.AuditRepository,
	notifier notification.Notifier,
) SolicitacaoService {
	if notifier == nil {
		notifier = notification.Nop{}
	}
	return &solicitacaoService{
		tx:       tx,
		repo:     repo,
		audit:    auditor{repo: auditRepo},
		notifier: notifier,
		now:      time.Now,
	}
}

// minimum authority per approval stage
var nivelMinimo = map[workflow.Etapa]model.NivelAprovacao{
	workflow.EtapaSolicitacao: model.NivelSupervisao,
	workflow.EtapaCotacao:     model.NivelGerencia,
	workflow.EtapaAquisicao:   model.NivelGerencia,
}

func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, notFound(what)
	}
	return id, nil
}

func oneOf(value, fallback string, allowed ...string) (string, bool) {
	if value == "" {
		return fallback, true
	}
	for _, a := range allowed {
		if value == a {
			return value, true
		}
	}
	return "", false
}

func (s *solicitacaoService) Create(ctx context.Context, req CreateSolicitacaoRequest) (*model.Solicitacao, error) {
	data := req.RequestData
	data.NomeSolicitante = strings.TrimSpace(data.NomeSolicitante)
	if data.NomeSolicitante == "" {
		return nil, validationError("nome_solicitante é obrigatório")
	}
	if len(req.Items) == 0 {
		return nil, validationError("a solicitação precisa de pelo menos um item")
	}

	categoria, ok := oneOf(data.Categoria, model.CategoriaOutros,
		model.CategoriaMateriais, model.CategoriaServicos, model.CategoriaOutros)
	if !ok {
		return nil, validationError("categoria inválida: %q", data.Categoria)
	}
	prioridade, ok := oneOf(data.Prioridade, model.PrioridadeBasica,
		model.PrioridadeUrgente, model.PrioridadeModerada, model.PrioridadeBasica)
	if !ok {
		return nil, validationError("prioridade inválida: %q", data.Prioridade)
	}
	if data.PrazoEntrega != "" {
		if _, err := time.Parse("2006-01-02", data.PrazoEntrega); err != nil {
			return nil, validationError("prazo_entrega deve estar no formato AAAA-MM-DD")
		}
	}

	sol := &model.Solicitacao{
		NomeSolicitante: data.NomeSolicitante,
		Aplicacao:       data.Aplicacao,
		CentroCusto:     data.CentroCusto,
		DataSolicitacao: s.now(),
		LocalEntrega:    data.LocalEntrega,
		PrazoEntrega:    data.PrazoEntrega,
		Categoria:       categoria,
		Motivo:          data.Motivo,
		Prioridade:      prioridade,
		Status:          workflow.StatusSolicitado,
	}
	if data.SolicitanteID != "" {
		id, err := uuid.Parse(data.SolicitanteID)
		if err != nil {
			return nil, validationError("solicitante_id inválido")
		}
		sol.SolicitanteID = &id
	} else {
		sol.SolicitanteID = actorUserID(ctx)
	}

	for i, in := range req.Items {
		descricao := strings.TrimSpace(in.Descricao)
		if descricao == "" {
			return nil, validationError("item %d: descricao é obrigatória", i+1)
		}
		if in.Quantidade < 1 {
			return nil, validationError("item %d: quantidade deve ser maior que zero", i+1)
		}
		item := model.Item{Descricao: descricao, Quantidade: in.Quantidade}
		if in.IDSolicitante != "" {
			if id, err := uuid.Parse(in.IDSolicitante); err == nil {
				item.IDSolicitante = &id
			}
		}
		sol.Itens = append(sol.Itens, item)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Create(txCtx, sol); err != nil {
			return fmt.Errorf("failed to create solicitacao: %w", mapRepoError(err, "solicitação"))
		}
		return s.audit.record(txCtx, model.ActionCreateSolicitacao, sol.ID.String(), sol.NomeSolicitante, map[string]interface{}{
			"itens":      len(sol.Itens),
			"categoria":  sol.Categoria,
			"prioridade": sol.Prioridade,
		})
	})
	if err != nil {
		return nil, err
	}

	return sol, nil
}

func (s *solicitacaoService) Get(ctx context.Context, id string) (*model.Solicitacao, error) {
	solID, err := parseID(id, "solicitação")
	if err != nil {
		return nil, err
	}
	sol, err := s.repo.FindByIDWithRelations(ctx, solID)
	if err != nil {
		return nil, mapRepoError(err, "solicitação")
	}
	return sol, nil
}

func (s *solicitacaoService) List(ctx context.Context, status string) ([]model.Solicitacao, error) {
	var filter []workflow.Status
	if status != "" {
		st, err := workflow.ParseStatus(status)
		if err != nil {
			return nil, validationError("%v", err)
		}
		filter = append(filter, st)
	}

	list, err := s.repo.List(ctx, filter...)
	if err != nil {
		return nil, fmt.Errorf("failed to list solicitacoes: %w", err)
	}
	if list == nil {
		list = []model.Solicitacao{}
	}
	return list, nil
}

// checkApproval validates the approver data an approval event needs
func checkApproval(ctx context.Context, ev workflow.Event, etapa workflow.Etapa, data *ApprovalData) error {
	if data == nil {
		return validationError("approvalData é obrigatório para %s", ev)
	}
	if strings.TrimSpace(data.AprovadoPor) == "" {
		return validationError("aprovado_por é obrigatório")
	}
	if ev == workflow.EventRejeitar && strings.TrimSpace(data.MotivoRejeicao) == "" {
		return validationError("motivo_rejeicao é obrigatório ao rejeitar")
	}
	if !data.NivelAprovacao.Valid() {
		return validationError("nivel_aprovacao inválido")
	}
	if minimo := nivelMinimo[etapa]; !data.NivelAprovacao.AtLeast(minimo) {
		return fmt.Errorf("%w: a etapa %s exige %s ou superior", ErrForbidden, etapa, minimo)
	}
	// an authenticated caller cannot sign above their own authority
	if actor, ok := ActorFrom(ctx); ok && actor.NivelAcesso != "" {
		if limit := actor.NivelAcesso.Autoridade(); data.NivelAprovacao > limit {
			return fmt.Errorf("%w: seu limite é %s", ErrForbidden, limit)
		}
	}
	return nil
}

func fillApprover(ctx context.Context, data *ApprovalData) {
	if data == nil || data.AprovadoPor != "" {
		return
	}
	if actor, ok := ActorFrom(ctx); ok {
		data.AprovadoPor = actor.Nome
	}
}

func (s *solicitacaoService) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*model.Solicitacao, error) {
	solID, err := parseID(id, "solicitação")
	if err != nil {
		return nil, err
	}
	target, err := workflow.ParseStatus(req.Status)
	if err != nil {
		return nil, validationError("%v", err)
	}
	fillApprover(ctx, req.ApprovalData)

	var (
		from  workflow.Status
		etapa workflow.Etapa
		sol   *model.Solicitacao
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		sol, err = s.repo.FindByIDForUpdate(txCtx, solID)
		if err != nil {
			return mapRepoError(err, "solicitação")
		}
		from = sol.Status
		etapa = workflow.StageOf(from)

		ev, err := workflow.EventFor(from, target)
		if err != nil {
			return err
		}
		if ev.RequiresApproval() {
			if err := checkApproval(txCtx, ev, etapa, req.ApprovalData); err != nil {
				return err
			}
		}

		if err := s.repo.UpdateStatus(txCtx, solID, target); err != nil {
			return fmt.Errorf("failed to update status: %w", mapRepoError(err, "solicitação"))
		}
		sol.Status = target

		if ev.RequiresApproval() {
			aprovacao := &model.Aprovacao{
				SolicitacaoID:  solID,
				Etapa:          etapa,
				Status:         model.AprovacaoAprovado,
				AprovadoPor:    strings.TrimSpace(req.ApprovalData.AprovadoPor),
				NivelAprovacao: req.ApprovalData.NivelAprovacao,
				DataAprovacao:  s.now(),
			}
			if !ev.Approved() {
				aprovacao.Status = model.AprovacaoRejeitado
				aprovacao.MotivoRejeicao = strings.TrimSpace(req.ApprovalData.MotivoRejeicao)
			}
			if err := s.repo.AddAprovacao(txCtx, aprovacao); err != nil {
				return fmt.Errorf("failed to log approval: %w", mapRepoError(err, "solicitação"))
			}
		}

		return s.audit.record(txCtx, model.ActionUpdateStatus, solID.String(), sol.NomeSolicitante, map[string]interface{}{
			"de":     from,
			"para":   target,
			"evento": ev,
		})
	})
	if err != nil {
		return nil, err
	}

	ev := notification.Event{
		Type:           notification.EventStatusAlterado,
		SolicitacaoID:  solID.String(),
		StatusAnterior: string(from),
		StatusNovo:     string(target),
		Etapa:          string(etapa),
		OcorridoEm:     s.now(),
	}
	if sol.SolicitanteID != nil {
		ev.SolicitanteID = sol.SolicitanteID.String()
	}
	if req.ApprovalData != nil {
		ev.Por = req.ApprovalData.AprovadoPor
		ev.Motivo = req.ApprovalData.MotivoRejeicao
	}
	s.notifier.Notify(ctx, ev)

	// Reload with relations
	updated, err := s.repo.FindByIDWithRelations(ctx, solID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload solicitacao: %w", err)
	}
	return updated, nil
}
