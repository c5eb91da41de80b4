package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/repo"
	"github.com/dheerghayush/naturals/internal/transport"
)

type BannerService struct {
	Store BannerStore
	Now   Clock
}

func (s *BannerService) List(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	return s.Store.ListBanners(ctx, activeOnly)
}

func (s *BannerService) Create(ctx context.Context, req transport.BannerRequest) (*models.Banner, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, newErr(ErrValidation, "Title is required")
	}
	b := &models.Banner{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		BgColor:     req.BgColor,
		Image:       req.Image,
		ButtonText:  req.ButtonText,
		ButtonLink:  req.ButtonLink,
		SortOrder:   req.Order,
		IsActive:    true,
		CreatedAt:   s.Now.now(),
	}
	if err := s.Store.CreateBanner(ctx, b); err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}
	return b, nil
}

func (s *BannerService) Update(ctx context.Context, id string, req transport.PatchBannerRequest) (*models.Banner, error) {
	if req.Title == nil && req.Subtitle == nil && req.Description == nil && req.BgColor == nil &&
		req.Image == nil && req.ButtonText == nil && req.ButtonLink == nil && req.Order == nil && req.IsActive == nil {
		return nil, newErr(ErrValidation, "No fields to update")
	}
	b, err := s.Store.BannerByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, newErr(ErrNotFound, "Banner not found")
		}
		return nil, err
	}

	setString(&b.Title, req.Title)
	setString(&b.Subtitle, req.Subtitle)
	setString(&b.Description, req.Description)
	setString(&b.BgColor, req.BgColor)
	setString(&b.Image, req.Image)
	setString(&b.ButtonText, req.ButtonText)
	setString(&b.ButtonLink, req.ButtonLink)
	if req.Order != nil {
		b.SortOrder = *req.Order
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	if err := s.Store.SaveBanner(ctx, b); err != nil {
		return nil, fmt.Errorf("save banner: %w", err)
	}
	return b, nil
}

func (s *BannerService) Delete(ctx context.Context, id string) error {
	if err := s.Store.DeleteBanner(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return newErr(ErrNotFound, "Banner not found")
		}
		return fmt.Errorf("delete banner: %w", err)
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
