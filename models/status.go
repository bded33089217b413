package models

import (
	"errors"
	"fmt"
)

type Role string

const (
	RoleFarmer Role = "farmer"
	RoleBuyer  Role = "buyer"
	RoleNGO    Role = "ngo"
)

func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleBuyer, RoleNGO:
		return true
	}
	return false
}

type ListingType string

const (
	ListingSell   ListingType = "sell"
	ListingBarter ListingType = "barter"
	ListingDonate ListingType = "donate"
)

func (t ListingType) Valid() bool {
	switch t {
	case ListingSell, ListingBarter, ListingDonate:
		return true
	}
	return false
}

// ListingStatus - состояние объявления: available -> claimed | sold.
// claimed и sold конечные.
type ListingStatus string

const (
	StatusAvailable ListingStatus = "available"
	StatusClaimed   ListingStatus = "claimed"
	StatusSold      ListingStatus = "sold"
)

var ErrInvalidTransition = errors.New("invalid listing status transition")

// ListingTransition - допустимый переход; From используется как условие
// WHERE в хранилище, поэтому проверка и запись идут одним запросом.
type ListingTransition struct {
	From ListingStatus
	To   ListingStatus
}

var (
	ClaimTransition = ListingTransition{From: StatusAvailable, To: StatusClaimed}
	SellTransition  = ListingTransition{From: StatusAvailable, To: StatusSold}
)

// EditableStatus - единственное состояние, в котором можно менять поля.
const EditableStatus = StatusAvailable

// ClaimableType - резервировать можно только пожертвования.
const ClaimableType = ListingDonate

func (s ListingStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusClaimed, StatusSold:
		return true
	}
	return false
}

// Editable сообщает, можно ли менять поля объявления в этом состоянии.
func (s ListingStatus) Editable() bool {
	return s == EditableStatus
}

func (s ListingStatus) apply(tr ListingTransition) (ListingStatus, error) {
	if s != tr.From {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, tr.To)
	}
	return tr.To, nil
}

// Claim возвращает состояние после резервирования пожертвования НКО.
func (s ListingStatus) Claim(t ListingType) (ListingStatus, error) {
	if t != ClaimableType {
		return s, fmt.Errorf("%w: %s listing cannot be claimed", ErrInvalidTransition, t)
	}
	return s.apply(ClaimTransition)
}

// Sell возвращает состояние после одобрения заявки на покупку.
func (s ListingStatus) Sell() (ListingStatus, error) {
	return s.apply(SellTransition)
}

// RequestStatus - состояние заявки: pending -> approved | rejected.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// IsDecision сообщает, является ли статус допустимым решением фермера.
func (s RequestStatus) IsDecision() bool {
	return s == RequestApproved || s == RequestRejected
}

var ErrInvalidDecision = errors.New("status must be approved or rejected")

// Resolve переводит заявку в конечное состояние. Решение принимается один раз.
func (s RequestStatus) Resolve(decision RequestStatus) (RequestStatus, error) {
	if !decision.IsDecision() {
		return s, fmt.Errorf("%w: %q", ErrInvalidDecision, decision)
	}
	if s != RequestPending {
		return s, fmt.Errorf("request already %s", s)
	}
	return decision, nil
}
