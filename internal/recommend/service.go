// Package recommend defines the recommendation service contract and its
// providers. The core depends only on Service; providers are selected by
// configuration.
package recommend

import (
	"context"
	"errors"
	"fmt"

	"github.com/ShayCichocki/careercraft/pkg/models"
)

// Provider names accepted by recommend.provider.
const (
	ProviderStatic  = "static"
	ProviderCatalog = "catalog"
	ProviderClaude  = "claude"
)

// Service produces recommendations for a finalized profile.
type Service interface {
	GenerateRecommendations(ctx context.Context, profile models.UserProfile) ([]models.Recommendation, error)
}

// ServiceFunc adapts a function to the Service interface.
type ServiceFunc func(ctx context.Context, profile models.UserProfile) ([]models.Recommendation, error)

// GenerateRecommendations calls f.
func (f ServiceFunc) GenerateRecommendations(ctx context.Context, profile models.UserProfile) ([]models.Recommendation, error) {
	return f(ctx, profile)
}

// ServiceError wraps a provider failure.
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// wrapErr wraps err in a ServiceError unless it already is one.
func wrapErr(provider string, err error) error {
	if err == nil {
		return nil
	}
	var serr *ServiceError
	if errors.As(err, &serr) {
		return err
	}
	return &ServiceError{Provider: provider, Err: err}
}
