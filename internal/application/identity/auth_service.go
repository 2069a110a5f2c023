package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/partner"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// TokenService issues and verifies bearer tokens
type TokenService interface {
	Issue(userID, actorID uuid.UUID, role identity.Role) (*auth.IssuedToken, error)
	Verify(token string) (identity.Session, error)
}

// AuthService handles registration, login and session resolution
type AuthService struct {
	userRepo        identity.UserRepository
	supplierRepo    partner.SupplierRepository
	supermarketRepo partner.SupermarketRepository
	txScope         TransactionScope
	tokens          TokenService
	eventPublisher  shared.EventPublisher
	logger          *zap.Logger
	now             func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	supplierRepo partner.SupplierRepository,
	supermarketRepo partner.SupermarketRepository,
	txScope TransactionScope,
	tokens TokenService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		supplierRepo:    supplierRepo,
		supermarketRepo: supermarketRepo,
		txScope:         txScope,
		tokens:          tokens,
		logger:          logger,
		now:             time.Now,
	}
}

// SetEventPublisher sets the event publisher for domain events
func (s *AuthService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Register creates the user and its supplier or supermarket record in one
// transaction, then binds the two together.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*UserInfo, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, shared.ErrDuplicateRequest.WithMessage("An account with this email already exists")
	}

	user, err := identity.NewUser(email, req.Name, req.Password, req.Role)
	if err != nil {
		return nil, err
	}
	profile := req.profile()
	profile.Email = user.Email

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Users().Save(ctx, user); err != nil {
			return err
		}

		var actorID uuid.UUID
		switch user.Role {
		case identity.RoleSupplier:
			supplier, err := partner.NewSupplier(user.ID, profile)
			if err != nil {
				return err
			}
			if err := repos.Suppliers().Save(ctx, supplier); err != nil {
				return err
			}
			actorID = supplier.ID
		case identity.RoleSupermarket:
			supermarket, err := partner.NewSupermarket(user.ID, profile)
			if err != nil {
				return err
			}
			if err := repos.Supermarkets().Save(ctx, supermarket); err != nil {
				return err
			}
			actorID = supermarket.ID
		}

		user.BindActor(actorID)
		return repos.Users().Save(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("actor_id", user.ActorID.String()),
		zap.String("role", user.Role.String()))
	s.publishEvents(ctx, user)

	info := ToUserInfo(user)
	return &info, nil
}

// Login authenticates a user and returns a signed access token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login for unknown email", zap.String("email", email))
			return nil, shared.ErrUnauthenticated.WithMessage("Invalid email or password")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("user_id", user.ID.String()))
		return nil, shared.ErrUnauthenticated.WithMessage("Invalid email or password")
	}
	if user.ActorID == uuid.Nil {
		s.logger.Error("User has no bound actor", zap.String("user_id", user.ID.String()))
		return nil, shared.ErrForbidden.WithMessage("Account is not linked to a supplier or supermarket")
	}

	token, err := s.tokens.Issue(user.ID, user.ActorID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	user.RecordLogin(s.now())
	if err := s.userRepo.Save(ctx, user); err != nil {
		// the login itself succeeded
		s.logger.Error("Failed to record login", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role.String()))

	return &LoginResult{
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
		TokenType:   token.TokenType,
		User:        ToUserInfo(user),
	}, nil
}

// ResolveSession verifies a bearer token and returns the caller's session
func (s *AuthService) ResolveSession(_ context.Context, token string) (identity.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return identity.Session{}, shared.ErrUnauthenticated
	}
	session, err := s.tokens.Verify(token)
	if err != nil {
		return identity.Session{}, shared.ErrUnauthenticated.WithMessage("Invalid or expired token").Wrap(err)
	}
	if !session.IsAuthenticated() {
		return identity.Session{}, shared.ErrUnauthenticated
	}
	return session, nil
}

// Me returns the profile of the actor behind the session
func (s *AuthService) Me(ctx context.Context, session identity.Session) (*ProfileResponse, error) {
	if !session.IsAuthenticated() {
		return nil, shared.ErrUnauthenticated
	}

	switch session.Role {
	case identity.RoleSupplier:
		supplier, err := s.supplierRepo.FindByID(ctx, session.ActorID)
		if err != nil {
			return nil, err
		}
		return toProfileResponse(session, supplier.Profile), nil
	case identity.RoleSupermarket:
		supermarket, err := s.supermarketRepo.FindByID(ctx, session.ActorID)
		if err != nil {
			return nil, err
		}
		return toProfileResponse(session, supermarket.Profile), nil
	default:
		return nil, shared.ErrForbidden
	}
}

func (s *AuthService) publishEvents(ctx context.Context, user *identity.User) {
	if s.eventPublisher == nil {
		return
	}
	events := user.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Error("Failed to publish domain events", zap.Error(err))
	}
	user.ClearDomainEvents()
}
