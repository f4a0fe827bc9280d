package usecases

import (
	"context"
	"strings"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

// LoginCommand accepts a username or email in Identifier. RequestedRole
// is the role the session should operate as; empty means the stored role.
type LoginCommand struct {
	Identifier    string
	Password      string
	RequestedRole string
	ClientIP      string
}

type LoginResult struct {
	UserID       uint
	Name         string
	StoredRole   string
	SessionRole  string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUseCase struct {
	userRepo    user.Repository
	hasher      PasswordHasher
	jwtService  JWTService
	rateLimiter RateLimiter
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	jwtService JWTService,
	rateLimiter RateLimiter,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		hasher:      hasher,
		jwtService:  jwtService,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if uc.rateLimiter != nil && cmd.ClientIP != "" {
		allowed, err := uc.rateLimiter.Allow(ctx, "login:"+cmd.ClientIP)
		if err != nil {
			// A broken limiter must not lock everyone out.
			uc.logger.Warnw("rate limiter unavailable", "error", err)
		} else if !allowed {
			return nil, errors.NewValidationError("too many login attempts, try again later")
		}
	}

	existing, err := uc.lookup(ctx, cmd.Identifier)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if !existing.IsActive() {
		return nil, errors.NewUnauthorizedError("account is disabled")
	}

	if err := uc.hasher.Verify(existing.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	requested := existing.Role()
	if cmd.RequestedRole != "" {
		requested = authorization.Role(cmd.RequestedRole)
		if !requested.IsValid() {
			return nil, errors.NewValidationError("invalid requested role")
		}
	}

	// The stored role must cover the requested one; the session then
	// runs as the requested role.
	sessionRole, ok := authorization.EffectiveLoginRole(existing.Role(), requested)
	if !ok {
		return nil, errors.NewForbiddenError("account does not hold the requested role")
	}

	tokens, err := uc.jwtService.Generate(existing.ID(), existing.Role(), sessionRole)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID(), "session_role", sessionRole.String())

	return &LoginResult{
		UserID:       existing.ID(),
		Name:         existing.Name(),
		StoredRole:   existing.Role().String(),
		SessionRole:  sessionRole.String(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}

func (uc *LoginUseCase) lookup(ctx context.Context, identifier string) (*user.User, error) {
	if strings.Contains(identifier, "@") {
		return uc.userRepo.GetByEmail(ctx, strings.ToLower(identifier))
	}
	return uc.userRepo.GetByName(ctx, identifier)
}
