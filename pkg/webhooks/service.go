// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
)

var (
	ErrInvalidIdentity = errors.New("identity id and email are required")
	ErrEmailTaken      = errors.New("email already belongs to another user")
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HandleRegistration creates or refreshes the users row backing an identity,
// so that tokens issued for it can own content and domains.
func (s *Service) HandleRegistration(ctx context.Context, identity Identity) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	id := strings.TrimSpace(identity.ID)
	email := strings.ToLower(strings.TrimSpace(identity.Traits.Email))

	s.logger.Debugf("handling registration for identity %s", id)

	if id == "" || email == "" {
		return nil, ErrInvalidIdentity
	}

	user, err := s.storage.UpsertUser(ctx, &types.User{
		ID:       id,
		Email:    email,
		Name:     identity.Traits.Name,
		FullName: identity.Traits.FullName,
	})

	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, ErrEmailTaken
	}

	if err != nil {
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	s.logger.Infof("provisioned user %s", user.ID)

	return user, nil
}

func NewService(s StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	svc := new(Service)

	svc.storage = s

	svc.tracer = tracer
	svc.monitor = monitor
	svc.logger = logger

	return svc
}
