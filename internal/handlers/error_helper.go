package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/CondoClubServices/area-scheduler/internal/httperr"
)

// writeBusinessError mapeia os códigos de negócio do core para o HTTP:
// 400 conflito de horário/entrada ruim, 401 credencial, 403 permissão,
// 404 não encontrado, 409 já existe / área em uso.
func writeBusinessError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeNotFound):
		httperr.NotFound(c, httperr.CodeNotFound, "Registro não encontrado.")
	case httperr.IsBusiness(err, httperr.CodePermissionDenied):
		httperr.Forbidden(c, httperr.CodePermissionDenied, "Usuário não tem permissão para realizar essa ação.")
	case httperr.IsBusiness(err, httperr.CodeInvalidCredentials):
		httperr.Unauthorized(c, httperr.CodeInvalidCredentials, "Não foi possível validar as credenciais.")
	case httperr.IsBusiness(err, httperr.CodeTimeConflict):
		httperr.BadRequest(c, httperr.CodeTimeConflict, "Conflito de horário com outra reserva.")
	case httperr.IsBusiness(err, httperr.CodeAlreadyExists):
		httperr.Conflict(c, httperr.CodeAlreadyExists, "Registro já existe.")
	case httperr.IsBusiness(err, httperr.CodeAreaInUse):
		httperr.Conflict(c, httperr.CodeAreaInUse, "Área possui reservas ativas.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
