// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/portfolio-service/internal/db"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var (
	userColumns   = []string{"id", "email", "name", "full_name", "avatar_url", "email_verified", "is_admin", "created_at", "updated_at"}
	domainColumns = []string{"id", "user_id", "name", "status", "storage_url", "storage_key", "created_at", "updated_at"}
)

// likeEscaper escapes the LIKE wildcards of a literal, using the default
// postgres escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"email": email})
}

func (s *Storage) getUser(ctx context.Context, where sq.Eq) (*types.User, error) {
	u, err := scanUser(
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where(where).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// UpsertUser creates the user row of an identity, or refreshes its email
// and names when the row exists. Names are only overwritten when given.
func (s *Storage) UpsertUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertUser")
	defer span.End()

	row, err := scanUser(
		s.db.Statement(ctx).
			Insert("users").
			Columns("id", "email", "name", "full_name").
			Values(u.ID, u.Email, u.Name, u.FullName).
			Suffix(
				"ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, " +
					"name = COALESCE(EXCLUDED.name, users.name), " +
					"full_name = COALESCE(EXCLUDED.full_name, users.full_name), " +
					"updated_at = NOW() RETURNING " + strings.Join(userColumns, ", "),
			).
			QueryRowContext(ctx),
	)

	if err != nil {
		if cErr := constraintError(err, "users"); cErr != nil {
			return nil, cErr
		}
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return row, nil
}

// FindEnabledDomain returns the enabled domain whose name contains variant,
// preferring an exact match and then the shortest name.
func (s *Storage) FindEnabledDomain(ctx context.Context, variant string) (*types.Domain, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindEnabledDomain")
	defer span.End()

	d, err := scanDomain(
		s.db.Statement(ctx).
			Select(domainColumns...).
			From("domains").
			Where(sq.Like{"name": "%" + likeEscaper.Replace(variant) + "%"}).
			Where(sq.Eq{"status": types.DomainStatusEnabled}).
			OrderByClause("(name = ?) DESC", variant).
			OrderBy("length(name) ASC").
			Limit(1).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find domain: %w", err)
	}

	return d, nil
}

func (s *Storage) GetEnabledDomainByName(ctx context.Context, name string) (*types.Domain, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetEnabledDomainByName")
	defer span.End()

	d, err := scanDomain(
		s.db.Statement(ctx).
			Select(domainColumns...).
			From("domains").
			Where(sq.Eq{"name": name, "status": types.DomainStatusEnabled}).
			Limit(1).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get domain: %w", err)
	}

	return d, nil
}

func (s *Storage) ListDomainsByOwner(ctx context.Context, userID string) ([]*types.Domain, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDomainsByOwner")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(domainColumns...).
		From("domains").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	defer rows.Close()

	domains := make([]*types.Domain, 0)
	for rows.Next() {
		d, err := scanDomain(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan domain: %w", err)
		}
		domains = append(domains, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return domains, nil
}

func (s *Storage) ListSettings(ctx context.Context, userID string, _ types.Filters) ([]*types.Setting, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSettings")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("setting_key", "setting_value").
		From("settings").
		Where(sq.Eq{"user_id": userID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	settings := make([]*types.Setting, 0)
	for rows.Next() {
		var st types.Setting
		if err := rows.Scan(&st.Key, &st.Value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return settings, nil
}

// UpsertSettings writes every key in one statement; keys are inserted in
// lexical order so the statement is deterministic.
func (s *Storage) UpsertSettings(ctx context.Context, userID string, settings map[string]string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertSettings")
	defer span.End()

	if len(settings) == 0 {
		return nil
	}

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	query := s.db.Statement(ctx).
		Insert("settings").
		Columns("user_id", "setting_key", "setting_value")

	for _, k := range keys {
		query = query.Values(userID, k, settings[k])
	}

	_, err := query.
		Suffix("ON CONFLICT (user_id, setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = NOW()").
		ExecContext(ctx)

	if err != nil {
		if cErr := constraintError(err, "settings"); cErr != nil {
			return cErr
		}
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	return nil
}

func scanUser(row rowScanner) (*types.User, error) {
	var u types.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.FullName, &u.AvatarURL, &u.EmailVerified, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func scanDomain(row rowScanner) (*types.Domain, error) {
	var d types.Domain
	err := row.Scan(&d.ID, &d.UserID, &d.Name, &d.Status, &d.StorageURL, &d.StorageKey, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
