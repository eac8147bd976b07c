package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/shramsetu/rozgar-backend-go/internal/config"
	appHTTP "github.com/shramsetu/rozgar-backend-go/internal/handler/http"
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/cron"
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/database"
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/jwt"
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/storage"
	"github.com/shramsetu/rozgar-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shramsetu/rozgar-backend-go/internal/service/attendance"
	paymentService "github.com/shramsetu/rozgar-backend-go/internal/service/payment"
	projectService "github.com/shramsetu/rozgar-backend-go/internal/service/project"
	reportService "github.com/shramsetu/rozgar-backend-go/internal/service/report"
	userService "github.com/shramsetu/rozgar-backend-go/internal/service/user"
	workerService "github.com/shramsetu/rozgar-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, workerRepo, projectRepo, userRepo)
	projectSvc := projectService.NewProjectService(projectRepo)
	workerSvc := workerService.NewWorkerService(workerRepo)
	paymentSvc := paymentService.NewPaymentService(paymentRepo, attendanceRepo, projectRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, workerRepo, projectRepo, userRepo)
	userSvc := userService.NewUserService(userRepo)

	scheduler := cron.NewScheduler()
	cron.NewProjectJobs(projectRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Project:    appHTTP.NewProjectHandler(projectSvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Payment:    appHTTP.NewPaymentHandler(paymentSvc),
		Report:     appHTTP.NewReportHandler(reportSvc, fileStorage, cfg.Report),
		Profile:    appHTTP.NewProfileHandler(userSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
