package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/catalog"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/giftcard"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/membership"
)

// SeedDefaults populates an empty install with the default catalog, gift card
// templates and membership plans. It is a no-op when categories already exist.
func SeedDefaults(ctx context.Context, catalogRepo catalog.Repository, giftCardRepo giftcard.Repository, membershipRepo membership.Repository) error {
	existing, err := catalogRepo.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing categories: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	categoryIDs := make(map[string]string)
	categories := GetDefaultCategories()
	for _, cat := range categories {
		created, err := catalogRepo.CreateCategory(ctx, &cat)
		if err != nil {
			slog.Warn("Failed to create default category", "category", cat.Name, "error", err)
			continue
		}
		categoryIDs[created.Name] = created.ID
	}
	slog.Info("Seeded default categories", "count", len(categories))

	services := GetDefaultServices()
	seeded := 0
	for _, def := range services {
		categoryID, ok := categoryIDs[def.CategoryName]
		if !ok {
			slog.Warn("Skipping default service, category missing", "service", def.Service.Name, "category", def.CategoryName)
			continue
		}
		svc := def.Service
		svc.CategoryID = categoryID
		if _, err := catalogRepo.CreateService(ctx, &svc); err != nil {
			slog.Warn("Failed to create default service", "service", svc.Name, "error", err)
			continue
		}
		seeded++
	}
	slog.Info("Seeded default services", "count", seeded)

	templates := GetDefaultGiftCardTemplates(time.Now().UTC())
	for _, tpl := range templates {
		if _, err := giftCardRepo.Create(ctx, &tpl); err != nil {
			slog.Warn("Failed to create default gift card template", "template", tpl.Name, "error", err)
		}
	}
	slog.Info("Seeded default gift card templates", "count", len(templates))

	plans := GetDefaultMembershipPlans()
	for _, plan := range plans {
		if _, err := membershipRepo.Create(ctx, &plan); err != nil {
			slog.Warn("Failed to create default membership plan", "plan", plan.Name, "error", err)
		}
	}
	slog.Info("Seeded default membership plans", "count", len(plans))

	return nil
}
