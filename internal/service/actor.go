package service

import (
	"context"
	"encoding/json"
	"fmt"

	"compras/internal/model"
	"compras/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Actor is the authenticated caller of a service operation
type Actor struct {
	UserID      string
	Nome        string
	NivelAcesso model.NivelAcesso
}

type actorKey struct{}

// WithActor attaches the caller identity to ctx
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFrom returns the caller identity, if the request carried one
func ActorFrom(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok
}

func actorUserID(ctx context.Context) *uuid.UUID {
	a, ok := ActorFrom(ctx)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(a.UserID)
	if err != nil {
		return nil
	}
	return &id
}

// auditor writes audit rows, normally inside the caller's transaction
type auditor struct {
	repo repository.AuditRepository
}

func (a auditor) record(ctx context.Context, action, entityID, entityName string, details interface{}) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode audit details: %w", err)
	}

	entry := model.AuditLog{
		UserID:     actorUserID(ctx),
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    datatypes.JSON(raw),
	}
	if err := a.repo.Log(ctx, &entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}
