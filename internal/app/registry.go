package app

import (
	"cortesec-admin/internal/assignment"
	"cortesec-admin/internal/audit"
	"cortesec-admin/internal/cargo"
	"cortesec-admin/internal/legalparam"
	"cortesec-admin/internal/location"
	"cortesec-admin/internal/modulo"
	"cortesec-admin/internal/parameter"
	"cortesec-admin/internal/rbac"
	"cortesec-admin/internal/role"
	"cortesec-admin/internal/roletype"
	"cortesec-admin/internal/shared/backend"
	"cortesec-admin/internal/shared/cache"
	"cortesec-admin/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type modules struct {
	client    *backend.Client
	loader    *cache.Loader
	expansion role.ExpansionStore
	rbac      rbac.Service
	recorder  audit.Logger
	logger    *zap.Logger
}

func registerModules(api *gin.RouterGroup, m modules) {
	// --- Repositories ---
	roleRepo := role.NewRepository(m.client)
	roleTypeRepo := roletype.NewRepository(m.client)
	assignmentRepo := assignment.NewRepository(m.client)
	userRepo := user.NewRepository(m.client)
	locationRepo := location.NewRepository(m.client)
	cargoRepo := cargo.NewRepository(m.client)
	moduloRepo := modulo.NewRepository(m.client)
	parameterRepo := parameter.NewRepository(m.client)
	legalParamRepo := legalparam.NewRepository(m.client)

	// --- Services ---
	roleService := role.NewService(roleRepo, m.logger)
	hierarchyService := role.NewHierarchyService(roleRepo, m.expansion, m.logger)
	roleTypeService := roletype.NewService(roleTypeRepo, m.loader, m.logger)
	assignmentService := assignment.NewService(assignmentRepo, roleRepo, m.logger)
	userService := user.NewService(userRepo)
	locationService := location.NewService(locationRepo, m.loader, m.logger)
	bulkService := location.NewBulkService(locationRepo, m.loader, m.logger)
	cargoService := cargo.NewService(cargoRepo, m.loader, m.logger)
	moduloService := modulo.NewService(moduloRepo, m.loader, m.logger)
	parameterService := parameter.NewService(parameterRepo, m.loader, m.logger)
	legalParamService := legalparam.NewService(legalParamRepo, m.loader, m.logger)

	// --- Handlers ---
	roleHandler := role.NewHandler(roleService, hierarchyService, m.logger)
	roleTypeHandler := roletype.NewHandler(roleTypeService, m.logger)
	assignmentHandler := assignment.NewHandler(assignmentService, m.logger)
	userHandler := user.NewHandler(userService, m.logger)
	locationHandler := location.NewHandler(locationService, bulkService, m.logger)
	cargoHandler := cargo.NewHandler(cargoService, m.logger)
	moduloHandler := modulo.NewHandler(moduloService, m.logger)
	parameterHandler := parameter.NewHandler(parameterService, m.logger)
	legalParamHandler := legalparam.NewHandler(legalParamService, m.logger)
	auditHandler := audit.NewHandler(m.recorder, m.logger)
	rbacHandler := rbac.NewHandler(m.rbac, m.logger)

	// --- Routes Registration ---
	role.RegisterRoutes(api, roleHandler, m.rbac)
	roletype.RegisterRoutes(api, roleTypeHandler, m.rbac)
	assignment.RegisterRoutes(api, assignmentHandler, m.rbac)
	user.RegisterRoutes(api, userHandler, m.rbac)
	location.RegisterRoutes(api, locationHandler, m.rbac)
	cargo.RegisterRoutes(api, cargoHandler, m.rbac)
	modulo.RegisterRoutes(api, moduloHandler, m.rbac)
	parameter.RegisterRoutes(api, parameterHandler, m.rbac)
	legalparam.RegisterRoutes(api, legalParamHandler, m.rbac)
	audit.RegisterRoutes(api, auditHandler)
	rbac.RegisterRoutes(api, rbacHandler)
}
