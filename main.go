package main

import (
	"log"

	"college_backend/app/repository"
	memoryRepo "college_backend/app/repository/memory"
	mongoRepo "college_backend/app/repository/mongo"
	postgresRepo "college_backend/app/repository/postgres"
	"college_backend/app/service"
	"college_backend/config"
	mongodb "college_backend/database/mongo"
	db "college_backend/database/postgres"
	routes "college_backend/route"
)

// buildRepository picks the entity store from STORAGE_DRIVER:
// postgres (default), mongo, or memory.
func buildRepository() repository.LecturerRepository {
	switch driver := config.GetEnvDefault("STORAGE_DRIVER", "postgres"); driver {
	case "postgres":
		db.Connect()
		return postgresRepo.NewLecturerRepository(db.GetDB())
	case "mongo":
		mongodb.Connect()
		coll := mongodb.GetCollection(config.GetEnvDefault("MONGO_DB", "college"), "lecturers")
		mongodb.EnsureLecturerIndexes(coll)
		return mongoRepo.NewLecturerRepository(coll)
	case "memory":
		return memoryRepo.NewLecturerRepository()
	default:
		log.Fatalf("unknown STORAGE_DRIVER %q", driver)
		return nil
	}
}

func main() {
	config.LoadEnv()

	repo := buildRepository()
	svc := service.NewLecturerService(repo)

	app := config.NewFiberApp()
	if err := routes.RegisterRoutes(app, svc); err != nil {
		log.Fatal("failed to register routes:", err)
	}

	port := config.GetEnvDefault("APP_PORT", "8080")
	log.Fatal(app.Listen(":" + port))
}
