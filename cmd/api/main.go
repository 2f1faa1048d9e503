package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/RomanBrocki/ponto-online-go/internal/config"
	appHTTP "github.com/RomanBrocki/ponto-online-go/internal/handler/http"
	"github.com/RomanBrocki/ponto-online-go/internal/pkg/database"
	"github.com/RomanBrocki/ponto-online-go/internal/pkg/jwt"
	"github.com/RomanBrocki/ponto-online-go/internal/pkg/pdf"
	"github.com/RomanBrocki/ponto-online-go/internal/repository/postgresql"
	authService "github.com/RomanBrocki/ponto-online-go/internal/service/auth"
	punchService "github.com/RomanBrocki/ponto-online-go/internal/service/punch"
	reportService "github.com/RomanBrocki/ponto-online-go/internal/service/report"
	userService "github.com/RomanBrocki/ponto-online-go/internal/service/user"
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

	location, err := time.LoadLocation(cfg.Punch.Timezone)
	if err != nil {
		log.Fatal("Invalid punch timezone: ", cfg.Punch.Timezone)
	}

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, jwtRepo)
	punchSvc := punchService.NewPunchService(punchRepo, location)
	reportSvc := reportService.NewReportService(punchRepo, pdf.NewRenderer())
	userSvc := userService.NewUserService(userRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	router := appHTTP.NewRouter(jwtSvc, cfg.App.FrontendURL, authHandler, punchHandler, reportHandler, userHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
