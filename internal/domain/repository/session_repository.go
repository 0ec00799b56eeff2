package repository

import (
	"time"

	"github.com/jhoicas/negocio-api/internal/domain/entity"
)

// SessionRepository define el puerto del almacén de sesiones server-side.
// Se inyecta explícitamente (nada de estado global de proceso); su ciclo de
// vida acompaña al del servidor.
type SessionRepository interface {
	Create(session *entity.Session) error
	GetByID(id string) (*entity.Session, error)
	Delete(id string) error
	DeleteExpired(now time.Time) error
}
