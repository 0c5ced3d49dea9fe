package auth

import (
	"strings"

	"go.uber.org/zap"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/pkg/blobstore"
)

// realm bundles the static demo credential table and role heuristics for one
// portal variant. Table keys are stored lowercased.
type realm struct {
	roles     []models.Role
	static    map[string]models.Credential
	guessRole func(normalized string) models.Role
}

// NewAlumniManager returns the auth manager for the alumni-tracking realm
// (egresado/coordinador).
func NewAlumniManager(store blobstore.Store, logger *zap.Logger, cfg Config) *Manager {
	return newManager(store, logger, cfg, realm{
		roles: []models.Role{models.RoleEgresado, models.RoleCoordinador},
		static: credentialTable(
			models.Credential{Username: "egresado1", Password: "12345", Role: models.RoleEgresado},
			models.Credential{Username: "egresado2", Password: "12345", Role: models.RoleEgresado},
			models.Credential{Username: "coord", Password: "12345", Role: models.RoleCoordinador},
			models.Credential{Username: "seguimiento@untels.edu.pe", Password: "12345", Role: models.RoleCoordinador},
		),
		guessRole: func(normalized string) models.Role {
			if strings.Contains(normalized, "coord") || strings.Contains(normalized, "admin") {
				return models.RoleCoordinador
			}
			return models.RoleEgresado
		},
	})
}

// NewFairManager returns the auth manager for the job-fair realm
// (estudiante/empresa).
func NewFairManager(store blobstore.Store, logger *zap.Logger, cfg Config) *Manager {
	return newManager(store, logger, cfg, realm{
		roles: []models.Role{models.RoleEstudiante, models.RoleEmpresa},
		static: credentialTable(
			models.Credential{Username: "EP", Password: "12345", Role: models.RoleEstudiante},
			models.Credential{Username: "ep@uni.pe", Password: "12345", Role: models.RoleEstudiante},
			models.Credential{Username: "a20230001", Password: "12345", Role: models.RoleEstudiante},
			models.Credential{Username: "emp-admin", Password: "12345", Role: models.RoleEmpresa},
			models.Credential{Username: "hr@company.pe", Password: "12345", Role: models.RoleEmpresa},
		),
		guessRole: func(normalized string) models.Role {
			if strings.HasPrefix(normalized, "emp-") ||
				strings.Contains(normalized, "@company") ||
				strings.Contains(normalized, "@corp") {
				return models.RoleEmpresa
			}
			return models.RoleEstudiante
		},
	})
}

func credentialTable(credentials ...models.Credential) map[string]models.Credential {
	table := make(map[string]models.Credential, len(credentials))
	for _, credential := range credentials {
		table[strings.ToLower(credential.Username)] = credential
	}
	return table
}
