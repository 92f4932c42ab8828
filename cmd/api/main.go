package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/wardline/rostering-backend-go/internal/config"
	appHTTP "github.com/wardline/rostering-backend-go/internal/handler/http"
	"github.com/wardline/rostering-backend-go/internal/pkg/database"
	"github.com/wardline/rostering-backend-go/internal/pkg/jwt"
	"github.com/wardline/rostering-backend-go/internal/repository/postgresql"
	employeeService "github.com/wardline/rostering-backend-go/internal/service/employee"
	"github.com/wardline/rostering-backend-go/internal/service/patternrisk"
	rosterService "github.com/wardline/rostering-backend-go/internal/service/roster"
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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "wardline-rostering"),
	)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	assignmentRepo := postgresql.NewScheduleAssignmentRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	rosterSvc := rosterService.NewRosterService(db, assignmentRepo, employeeRepo, leaveRepo, logger, cfg.Engine.DefaultSeed)
	analysisSvc := patternrisk.NewAnalysisService(assignmentRepo, employeeRepo, leaveRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	rosterHandler := appHTTP.NewRosterHandler(rosterSvc, analysisSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		JWTService,
		rosterHandler,
		employeeHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
