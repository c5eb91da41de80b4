package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/repo"
	"github.com/dheerghayush/naturals/internal/transport"
	"github.com/dheerghayush/naturals/pkg/logging"
)

// AddressService manages a customer's saved addresses. Primary
// reassignment is two writes; callers must accept a moment with no
// primary address.
type AddressService struct {
	Store AddressStore
	Now   Clock
}

func (s *AddressService) List(ctx context.Context, userID string) ([]models.Address, error) {
	return s.Store.ListAddresses(ctx, userID)
}

func (s *AddressService) Create(ctx context.Context, userID string, req transport.AddressRequest) (*models.Address, error) {
	n, err := s.Store.CountAddresses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count addresses: %w", err)
	}
	a := &models.Address{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
		IsPrimary: req.IsPrimary || n == 0,
		CreatedAt: s.Now.now(),
	}
	if a.IsPrimary {
		if err := s.Store.ClearPrimary(ctx, userID, a.ID); err != nil {
			return nil, fmt.Errorf("clear primary: %w", err)
		}
	}
	if err := s.Store.CreateAddress(ctx, a); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	return a, nil
}

func (s *AddressService) get(ctx context.Context, id, userID string) (*models.Address, error) {
	a, err := s.Store.AddressByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, newErr(ErrNotFound, "Address not found")
		}
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Update(ctx context.Context, id, userID string, req transport.PatchAddressRequest) (*models.Address, error) {
	a, err := s.get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	setString(&a.Name, req.Name)
	setString(&a.Email, req.Email)
	setString(&a.Phone, req.Phone)
	setString(&a.Address, req.Address)
	setString(&a.City, req.City)
	setString(&a.State, req.State)
	setString(&a.Pincode, req.Pincode)
	if err := s.Store.SaveAddress(ctx, a); err != nil {
		return nil, fmt.Errorf("save address: %w", err)
	}
	return a, nil
}

// Delete removes an address. When it was the primary one, the oldest
// remaining address is promoted.
func (s *AddressService) Delete(ctx context.Context, id, userID string) error {
	a, err := s.get(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := s.Store.DeleteAddress(ctx, id, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return newErr(ErrNotFound, "Address not found")
		}
		return fmt.Errorf("delete address: %w", err)
	}
	if !a.IsPrimary {
		return nil
	}

	rest, err := s.Store.ListAddresses(ctx, userID)
	if err != nil {
		return fmt.Errorf("list addresses: %w", err)
	}
	if len(rest) > 0 {
		if err := s.Store.SetPrimary(ctx, rest[0].ID, userID); err != nil {
			logging.FromContext(ctx).Warn("address_primary_error", "address_id", rest[0].ID, "error", err)
		}
	}
	return nil
}

func (s *AddressService) SetPrimary(ctx context.Context, id, userID string) error {
	if _, err := s.get(ctx, id, userID); err != nil {
		return err
	}
	if err := s.Store.ClearPrimary(ctx, userID, id); err != nil {
		return fmt.Errorf("clear primary: %w", err)
	}
	if err := s.Store.SetPrimary(ctx, id, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return newErr(ErrNotFound, "Address not found")
		}
		return fmt.Errorf("set primary: %w", err)
	}
	return nil
}
