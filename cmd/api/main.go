package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/emiratehr/payroll-backend-go/internal/config"
	appHTTP "github.com/emiratehr/payroll-backend-go/internal/handler/http"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/database"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/storage"
	"github.com/emiratehr/payroll-backend-go/internal/repository/postgresql"
	attachmentService "github.com/emiratehr/payroll-backend-go/internal/service/attachment"
	employeeService "github.com/emiratehr/payroll-backend-go/internal/service/employee"
	"github.com/emiratehr/payroll-backend-go/internal/service/file"
	"github.com/emiratehr/payroll-backend-go/internal/service/master"
	"github.com/go-chi/jwtauth/v5"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	contractTypeRepo := postgresql.NewContractTypeRepository(db)
	jobTitleRepo := postgresql.NewJobTitleRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	fieldTypeRepo := postgresql.NewFieldTypeRepository(db)
	bankRepo := postgresql.NewBankRepository(db)
	phoneCodeRepo := postgresql.NewPhoneCountryCodeRepository(db)
	designationRepo := postgresql.NewDesignationRepository(db)
	customFieldRepo := postgresql.NewCustomFieldConfigRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	attachmentRepo := postgresql.NewAttachmentRepository(db)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	masterSvc := master.NewMasterService(
		contractTypeRepo,
		jobTitleRepo,
		departmentRepo,
		locationRepo,
		fieldTypeRepo,
		bankRepo,
		phoneCodeRepo,
		designationRepo,
		customFieldRepo,
	)
	txRunner := postgresql.NewTxRunner(db)
	employeeSvc := employeeService.NewEmployeeService(
		txRunner,
		employeeRepo,
		userRepo,
		attachmentRepo,
		phoneCodeRepo,
		contractTypeRepo,
		departmentRepo,
		locationRepo,
		bankRepo,
		jobTitleRepo,
		fileSvc,
	)
	attachmentSvc := attachmentService.NewAttachmentService(txRunner, attachmentRepo, employeeRepo, fileSvc)

	tokenAuth := jwtauth.New("HS256", []byte(cfg.Auth.JWTSecret), nil)

	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attachmentHandler := appHTTP.NewAttachmentHandler(attachmentSvc)

	router := appHTTP.NewRouter(tokenAuth, masterHandler, employeeHandler, attachmentHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
