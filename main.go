package main

import (
	"log"

	api "notes-backend/cmd/api"
	authDelivery "notes-backend/internal/auth/delivery"
	authdomain "notes-backend/internal/auth/domain"
	authRepo "notes-backend/internal/auth/repository"
	"notes-backend/internal/auth/token"
	authUsecase "notes-backend/internal/auth/usecase"
	notedomain "notes-backend/internal/note/domain"
	noteRepo "notes-backend/internal/note/repository"
	noteUsecase "notes-backend/internal/note/usecase"
	"notes-backend/pkg/config"
	"notes-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &notedomain.Note{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	noteRepository := noteRepo.NewGormNoteRepository(db)

	// Token service and identity resolution
	tokens := token.NewService(cfg)
	resolver := authDelivery.NewIdentityResolver(tokens, userRepository)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokens, cfg)
	noteUsecaseInstance := noteUsecase.NewNoteUsecase(noteRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, noteUsecaseInstance, resolver, tokens, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
