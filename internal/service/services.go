package service

import (
	"github.com/MKhiriev/sky-take-out/internal/config"
	"github.com/MKhiriev/sky-take-out/internal/logger"
	"github.com/MKhiriev/sky-take-out/internal/store"
	"github.com/MKhiriev/sky-take-out/internal/utils"
	"github.com/MKhiriev/sky-take-out/internal/validators"
	"github.com/MKhiriev/sky-take-out/models"
)

type Services struct {
	AuthService     AuthService
	EmployeeService EmployeeService
	CategoryService CategoryService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	digester, err := NewPasswordDigester(cfg.App)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	dtoValidator := validators.NewDTOValidator()

	employeeService := NewEmployeeValidationService(dtoValidator).
		Wrap(NewEmployeeService(storages.EmployeeRepository, digester, cfg.App.DefaultPassword, logger))
	categoryService := NewCategoryValidationService(dtoValidator).
		Wrap(NewCategoryService(storages.CategoryRepository, logger))

	return &Services{
		AuthService:     NewAuthService(utils.NewTokenCodec(), cfg.Auth, logger),
		EmployeeService: employeeService,
		CategoryService: categoryService,
		AppInfoService:  appInfoService,
	}, nil
}
