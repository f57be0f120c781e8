package notification

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"text/template"

	"compras/internal/model"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

// RecipientLookup resolves the requester of an event to a mailbox
type RecipientLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
}

// SMTPConfig holds the outgoing mail server settings
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

const bodyTemplate = `Olá {{.Nome}},

{{.Mensagem}}

Solicitação: {{.Event.SolicitacaoID}}
{{- if .Event.StatusNovo}}
Status: {{if .Event.StatusAnterior}}{{.Event.StatusAnterior}} → {{end}}{{.Event.StatusNovo}}
{{- end}}
{{- if .Event.Etapa}}
Etapa: {{.Event.Etapa}}
{{- end}}
{{- if .Event.Por}}
Responsável: {{.Event.Por}}
{{- end}}
{{- if .Event.Fornecedor}}
Fornecedor: {{.Event.Fornecedor}}
{{- end}}
{{- if .Valor}}
Valor: {{.Valor}}
{{- end}}
{{- if .Event.Motivo}}
Motivo: {{.Event.Motivo}}
{{- end}}

Este é um e-mail automático do sistema de compras.
`

var mailTemplate = template.Must(template.New("notificacao").Parse(bodyTemplate))

// Mailer e-mails the requester of a purchase request about its progress
type Mailer struct {
	from  string
	users RecipientLookup
	send  func(m *gomail.Message) error
}

func NewMailer(cfg SMTPConfig, users RecipientLookup) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return &Mailer{
		from:  cfg.From,
		users: users,
		send:  func(m *gomail.Message) error { return dialer.DialAndSend(m) },
	}
}

// Notify looks up the requester and sends the mail in the background
func (m *Mailer) Notify(ctx context.Context, ev Event) {
	if ev.SolicitanteID == "" {
		return
	}
	id, err := uuid.Parse(ev.SolicitanteID)
	if err != nil {
		return
	}

	// the request context may be cancelled as soon as the handler returns
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := m.deliver(ctx, id, ev); err != nil {
			log.Printf("notification: failed to e-mail %s about %s: %v", ev.SolicitanteID, ev.Type, err)
		}
	}()
}

func (m *Mailer) deliver(ctx context.Context, userID uuid.UUID, ev Event) error {
	user, err := m.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load recipient: %w", err)
	}
	if !user.Ativo || user.Email == "" {
		return nil
	}

	subject, body, err := Render(ev, user.Nome)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", user.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.send(msg)
}

// Render builds the subject and plain text body for ev
func Render(ev Event, nome string) (string, string, error) {
	subject, mensagem := describe(ev)

	data := struct {
		Nome     string
		Mensagem string
		Valor    string
		Event    Event
	}{
		Nome:     nome,
		Mensagem: mensagem,
		Event:    ev,
	}
	if ev.Valor != nil {
		data.Valor = FormatBRL(*ev.Valor)
	}

	var body bytes.Buffer
	if err := mailTemplate.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("failed to render notification: %w", err)
	}
	return subject, body.String(), nil
}

func describe(ev Event) (subject, mensagem string) {
	switch ev.Type {
	case EventStatusAlterado:
		return "Solicitação de compra: " + ev.StatusNovo,
			"Sua solicitação de compra mudou de status."
	case EventCotacaoCriada:
		return "Nova cotação recebida",
			"Uma nova cotação foi registrada para sua solicitação."
	case EventCotacaoAvaliada:
		return "Cotação avaliada",
			"Uma cotação da sua solicitação foi avaliada."
	case EventCompraFinalizada:
		return "Compra finalizada",
			"Os itens da sua solicitação foram selecionados para compra."
	default:
		return "Atualização da solicitação de compra", "Sua solicitação foi atualizada."
	}
}

// FormatBRL renders an amount as Brazilian currency, e.g. R$ 1.234,50
func FormatBRL(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return "R$ " + humanize.FormatFloat("#.###,##", f)
}
