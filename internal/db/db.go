package db

import (
	"log"
	"time"

	"github.com/CondoClubServices/area-scheduler/internal/config"
	"github.com/CondoClubServices/area-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Area{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedRoles(db)
	ensureIntervalConstraint(db)

	return db
}

func seedRoles(db *gorm.DB) {
	roles := []models.Role{
		{ID: 1, Label: models.RoleAdministrador},
		{ID: 2, Label: models.RoleCliente},
	}
	for _, role := range roles {
		var existing models.Role
		if err := db.First(&existing, role.ID).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&role).Error; err != nil {
				log.Fatalf("failed to seed role %q: %v", role.Label, err)
			}
		}
	}
}

const intervalConstraintName = "reservations_no_overlap"

// hora_inicio/hora_fim migram como timestamptz, então o range precisa ser
// tstzrange (tsrange não aceita timestamptz).
const intervalConstraintDDL = `
        ALTER TABLE reservations
        ADD CONSTRAINT reservations_no_overlap
        EXCLUDE USING gist (
            area_id WITH =,
            reserva_data WITH =,
            tstzrange(hora_inicio, hora_fim) WITH &&
        )
    `

// Backstop no storage contra double-booking: duas criações concorrentes
// podem passar a checagem de conflito antes de qualquer commit; a
// constraint de exclusão garante que só uma delas persiste. Subir sem a
// constraint deixaria a corrida aberta, então qualquer falha aqui é fatal.
func ensureIntervalConstraint(db *gorm.DB) {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatalf("failed to enable btree_gist: %v", err)
	}

	var count int64
	if err := db.Raw(
		`SELECT count(*) FROM pg_constraint WHERE conname = ?`,
		intervalConstraintName,
	).Scan(&count).Error; err != nil {
		log.Fatalf("failed to inspect constraints: %v", err)
	}
	if count > 0 {
		return
	}

	if err := db.Exec(intervalConstraintDDL).Error; err != nil {
		log.Fatalf("failed to add overlap constraint: %v", err)
	}
}
