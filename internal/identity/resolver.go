package identity

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/CondoClubServices/area-scheduler/internal/config"
	"github.com/CondoClubServices/area-scheduler/internal/httperr"
	"github.com/CondoClubServices/area-scheduler/internal/models"
)

// Resolver traduz credenciais (email+senha ou bearer token) em um Actor
// com seu conjunto de permissões.
type Resolver struct {
	db    *gorm.DB
	cfg   *config.Config
	cache *permissionCache
}

func NewResolver(db *gorm.DB, cfg *config.Config) *Resolver {
	return &Resolver{
		db:    db,
		cfg:   cfg,
		cache: newPermissionCache(cfg.PermCacheSize, cfg.PermCacheTTL, time.Now),
	}
}

// Authenticate valida email+senha. Usuário inexistente e senha errada
// produzem o mesmo erro.
func (r *Resolver) Authenticate(ctx context.Context, email, password string) (*models.User, []string, error) {
	user, err := r.userByEmail(ctx, email)
	if err != nil {
		return nil, nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil, nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}
	return user, []string{user.Role.Label}, nil
}

// IssueToken assina um token para o usuário com suas permissões atuais.
func (r *Resolver) IssueToken(user *models.User, permissions []string) (string, error) {
	return IssueToken(r.cfg.JWTSecret, user.Email, permissions, r.cfg.TokenTTL)
}

// ResolveToken verifica o token e devolve o ator. O registro do usuário é
// SEMPRE recarregado do banco; só a lista de permissões passa pelo cache
// (risco de permissão defasada dentro da janela do TTL, aceito).
func (r *Resolver) ResolveToken(ctx context.Context, raw string) (*models.User, Actor, error) {
	payload, err := parseToken(r.cfg.JWTSecret, raw)
	if err != nil {
		return nil, Actor{}, err
	}

	user, err := r.userByEmail(ctx, payload.SubjectEmail)
	if err != nil {
		return nil, Actor{}, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	permissions, ok := r.cache.Get(payload.SubjectEmail)
	if !ok {
		permissions = payload.Permissions
		r.cache.Set(payload.SubjectEmail, permissions)
	}

	actor := Actor{
		UserID:      user.ID,
		Email:       user.Email,
		Permissions: permissions,
	}
	return user, actor, nil
}

func (r *Resolver) userByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
