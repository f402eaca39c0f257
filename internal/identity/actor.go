package identity

// Actor é o valor autenticado construído uma vez por request e passado
// explicitamente; nunca existe como estado global.
type Actor struct {
	UserID      uint
	Email       string
	Permissions []string
}

func (a Actor) HasPermission(required string) bool {
	for _, p := range a.Permissions {
		if p == required {
			return true
		}
	}
	return false
}

// CanManage implementa a regra dono-ou-admin: o ator pode mexer no
// recurso se for o dono ou se tiver a permissão de administrador.
func (a Actor) CanManage(ownerID uint, adminPermission string) bool {
	return a.UserID == ownerID || a.HasPermission(adminPermission)
}
