package services

import (
	"context"
	"time"

	"github.com/upslabs/reservalab/internal/app/models"
	"github.com/upslabs/reservalab/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

// fakeUserRepository is an in-memory IUserRepository.
type fakeUserRepository struct {
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[int64]*models.User{}}
}

func (f *fakeUserRepository) Create(ctx context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Correo == user.Correo {
			return apperrors.ErrEmailTaken
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetByCorreo(ctx context.Context, correo string) (*models.User, error) {
	for _, u := range f.users {
		if u.Correo == correo {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepository) CorreoExists(ctx context.Context, correo string, excludeID int64) (bool, error) {
	for _, u := range f.users {
		if u.Correo == correo && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepository) List(ctx context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepository) UpdateFields(ctx context.Context, id int64, set map[string]interface{}) error {
	user, ok := f.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	for column, value := range set {
		switch column {
		case "nombre":
			user.Nombre = value.(string)
		case "apellido":
			user.Apellido = value.(string)
		case "correo":
			user.Correo = value.(string)
		case "cedula":
			user.Cedula = value.(string)
		case "carrera":
			user.Carrera = value.(string)
		case "password_hash":
			user.PasswordHash = value.(string)
		}
	}
	return nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

// fakeAdminRepository is an in-memory IAdminRepository.
type fakeAdminRepository struct {
	nextID int64
	admins map[int64]*models.Admin
}

func newFakeAdminRepository() *fakeAdminRepository {
	return &fakeAdminRepository{admins: map[int64]*models.Admin{}}
}

func (f *fakeAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	for _, a := range f.admins {
		if a.Correo == admin.Correo {
			return apperrors.ErrAdminEmailTaken
		}
	}
	f.nextID++
	admin.ID = f.nextID
	admin.CreatedAt = time.Now()
	f.admins[admin.ID] = admin
	return nil
}

func (f *fakeAdminRepository) GetByCorreo(ctx context.Context, correo string) (*models.Admin, error) {
	for _, a := range f.admins {
		if a.Correo == correo {
			return a, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (f *fakeAdminRepository) CorreoExists(ctx context.Context, correo string) (bool, error) {
	for _, a := range f.admins {
		if a.Correo == correo {
			return true, nil
		}
	}
	return false, nil
}

// fakeTokenRepository is an in-memory ITokenRepository.
type fakeTokenRepository struct {
	revoked map[string]bool
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{revoked: map[string]bool{}}
}

func (f *fakeTokenRepository) Revoke(ctx context.Context, jti string) error {
	f.revoked[jti] = true
	return nil
}

func (f *fakeTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return f.revoked[jti], nil
}

// fakeReservationRepository is an in-memory IReservationRepository that
// replays the uq_lab_schedule constraint on writes.
type fakeReservationRepository struct {
	nextID  int64
	records map[int64]*models.LaboratoryRequest
}

func newFakeReservationRepository() *fakeReservationRepository {
	return &fakeReservationRepository{records: map[int64]*models.LaboratoryRequest{}}
}

func (f *fakeReservationRepository) scheduleTaken(laboratorio string, fecha time.Time, horario string, excludeID int64) bool {
	for _, r := range f.records {
		if r.ID == excludeID {
			continue
		}
		if r.Laboratorio == laboratorio && r.FechaPrestamo.Equal(fecha) && r.HorarioUso == horario {
			return true
		}
	}
	return false
}

func (f *fakeReservationRepository) Create(ctx context.Context, record *models.LaboratoryRequest) error {
	if f.scheduleTaken(record.Laboratorio, record.FechaPrestamo, record.HorarioUso, 0) {
		return apperrors.ErrScheduleTaken
	}
	f.nextID++
	record.ID = f.nextID
	record.CreatedAt = time.Now()
	f.records[record.ID] = record
	return nil
}

func (f *fakeReservationRepository) GetByID(ctx context.Context, id int64) (*models.LaboratoryRequest, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, apperrors.ErrReservationNotFound
	}
	return record, nil
}

func (f *fakeReservationRepository) ExistsSchedule(ctx context.Context, laboratorio string, fecha time.Time, horario string, excludeID int64) (bool, error) {
	return f.scheduleTaken(laboratorio, fecha, horario, excludeID), nil
}

func (f *fakeReservationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.LaboratoryRequest, error) {
	var out []*models.LaboratoryRequest
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepository) List(ctx context.Context) ([]*models.LaboratoryRequest, error) {
	out := make([]*models.LaboratoryRequest, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReservationRepository) UpdateFields(ctx context.Context, id int64, set map[string]interface{}) error {
	record, ok := f.records[id]
	if !ok {
		return apperrors.ErrReservationNotFound
	}

	laboratorio := record.Laboratorio
	fecha := record.FechaPrestamo
	horario := record.HorarioUso
	if v, ok := set["laboratorio"]; ok {
		laboratorio = v.(string)
	}
	if v, ok := set["fecha_prestamo"]; ok {
		fecha = v.(time.Time)
	}
	if v, ok := set["horario_uso"]; ok {
		horario = v.(string)
	}
	if f.scheduleTaken(laboratorio, fecha, horario, id) {
		return apperrors.ErrScheduleTaken
	}

	for column, value := range set {
		switch column {
		case "correo_institucional":
			record.CorreoInstitucional = value.(string)
		case "nombres_completos":
			record.NombresCompletos = value.(string)
		case "cargo":
			record.Cargo = value.(string)
		case "carrera":
			record.Carrera = value.(string)
		case "nivel":
			record.Nivel = value.(string)
		case "discapacidad":
			record.Discapacidad = value.(string)
		case "materia_motivo":
			record.MateriaMotivo = value.(string)
		case "numero_estudiantes":
			record.NumeroEstudiantes = value.(int)
		case "fecha_prestamo":
			record.FechaPrestamo = value.(time.Time)
		case "horario_uso":
			record.HorarioUso = value.(string)
		case "descripcion_actividades":
			record.DescripcionActividades = value.(string)
		case "laboratorio":
			record.Laboratorio = value.(string)
		case "equipo":
			record.Equipo = value.(string)
		}
	}
	return nil
}

func (f *fakeReservationRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := f.records[id]; !ok {
		return apperrors.ErrReservationNotFound
	}
	delete(f.records, id)
	return nil
}
