package permission

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/authorization"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

var _ setup.AccessPolicy = (*Enforcer)(nil)

// setupAccessModel grants a role-wide policy match, or falls back to the
// setup's own attributes: the owner does anything, a shared setup is readable
// by everyone and writable when full access is on.
const setupAccessModel = `
[request_definition]
r = role, uid, owner, shared, full, act

[policy_definition]
p = role, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (r.role == p.role && r.act == p.act) || r.uid == r.owner || (r.act == "read" && r.shared == "true") || (r.act == "write" && r.shared == "true" && r.full == "true")
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer stores role policies in the casbin_rule table through the gorm
// adapter and seeds the admin policies.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}
	return newEnforcer(adapter, log)
}

func newEnforcer(adapter interface{}, log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(setupAccessModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	var enforcer *casbin.Enforcer
	if adapter == nil {
		enforcer, err = casbin.NewEnforcer(m)
	} else {
		enforcer, err = casbin.NewEnforcer(m, adapter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{enforcer: enforcer, logger: log.With("component", "permission.enforcer")}
	if err := e.seed(); err != nil {
		return nil, err
	}
	return e, nil
}

// seed grants admins read and write on every setup. Existing rows are kept.
func (e *Enforcer) seed() error {
	for _, action := range []setup.Action{setup.ActionRead, setup.ActionWrite} {
		if err := e.addPolicy(authorization.RoleAdmin.String(), action); err != nil {
			return err
		}
	}
	return nil
}

func (e *Enforcer) addPolicy(role string, action setup.Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	has, err := e.enforcer.HasPolicy(role, string(action))
	if err != nil {
		return fmt.Errorf("failed to check policy [%s, %s]: %w", role, action, err)
	}
	if has {
		return nil
	}
	if _, err := e.enforcer.AddPolicy(role, string(action)); err != nil {
		e.logger.Errorw("failed to add permission policy", "error", err, "role", role, "action", action)
		return fmt.Errorf("failed to add policy [%s, %s]: %w", role, action, err)
	}
	return nil
}

// Can implements setup.AccessPolicy.
func (e *Enforcer) Can(_ context.Context, actor setup.Actor, s *setup.Setup, action setup.Action) (bool, error) {
	if s == nil || actor.UserID == "" {
		return false, nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(
		actor.Role,
		actor.UserID,
		s.UserID(),
		strconv.FormatBool(s.IsShared()),
		strconv.FormatBool(s.SharedFullAccess()),
		string(action),
	)
	if err != nil {
		e.logger.Errorw("permission check failed",
			"error", err,
			"user_id", actor.UserID,
			"setup_id", s.ID(),
			"action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}
