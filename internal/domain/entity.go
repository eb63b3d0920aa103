// Package domain holds the building blocks shared by every aggregate: entity
// identity, audit capabilities, record state and the domain event buffer.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvariantError marks a programmer error: a domain rule broken by the calling
// code. It is raised via panic, never returned as a failure outcome.
type InvariantError string

func (e InvariantError) Error() string { return string(e) }

// RecordState is the row-level lifecycle, orthogonal to any domain status.
type RecordState int

const (
	RecordStateUnknown RecordState = 0
	RecordStateAdded   RecordState = 100
	RecordStateUpdated RecordState = 200
	RecordStateDeleted RecordState = 300
)

// Entity carries the store-assigned surrogate key and the opaque concurrency
// token. Both are bound by the persistence boundary, never by domain logic.
type Entity struct {
	id         int64
	rowVersion int64
}

func (e *Entity) ID() int64         { return e.id }
func (e *Entity) RowVersion() int64 { return e.rowVersion }

// BindStored attaches store-assigned identity after a load or insert.
func (e *Entity) BindStored(id, rowVersion int64) {
	e.id = id
	e.rowVersion = rowVersion
}

// Audit capability markers. The audit interceptor dispatches on these rather
// than on concrete entity types.
type Creatable interface {
	SetCreated(operatorID uuid.UUID, now time.Time)
}

type Modifiable interface {
	SetModified(operatorID uuid.UUID, now time.Time)
}

type SoftDeletable interface {
	SetDeleted(operatorID uuid.UUID, now time.Time)
}

// AuditSnapshot is the flattened audit state, used by the persistence mappers
// to rehydrate entities without exposing setters to domain code.
type AuditSnapshot struct {
	CreatorID   uuid.UUID
	CreatedAt   time.Time
	ModifierID  *uuid.UUID
	ModifiedAt  *time.Time
	DeleterID   *uuid.UUID
	DeletedAt   *time.Time
	RecordState RecordState
}

// Auditable is the base of entities whose creator, modifier and deleter are
// stamped by the commit sequence.
type Auditable struct {
	Entity
	audit AuditSnapshot
}

func (a *Auditable) Audit() AuditSnapshot { return a.audit }

func (a *Auditable) RestoreAudit(s AuditSnapshot) { a.audit = s }

func (a *Auditable) RecordState() RecordState { return a.audit.RecordState }

func (a *Auditable) SetCreated(operatorID uuid.UUID, now time.Time) {
	a.audit.CreatorID = operatorID
	a.audit.CreatedAt = now
	a.audit.RecordState = RecordStateAdded
}

func (a *Auditable) SetModified(operatorID uuid.UUID, now time.Time) {
	a.audit.ModifierID = &operatorID
	a.audit.ModifiedAt = &now
	a.audit.RecordState = RecordStateUpdated
}

func (a *Auditable) SetDeleted(operatorID uuid.UUID, now time.Time) {
	a.audit.DeleterID = &operatorID
	a.audit.DeletedAt = &now
	a.audit.RecordState = RecordStateDeleted
}
